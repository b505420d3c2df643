// Package vehicle provides the stateful subsystems a car is composed of.
//
// Each subsystem owns a small piece of observable state and guards it with
// validated mutators:
//
//   - [Engine]: active flag plus current speed
//   - [Transmission]: selector gear (Park, Reverse, Drive)
//   - [SteeringSystem]: wheel angle in [-MaxSteeringAngle, MaxSteeringAngle]
//   - [BrakingSystem]: brake force in [0, MaxBrakeForce]
//
// Mutators reject out-of-range input with a false return and a log line; they
// never error and never leave the subsystem in a partial state. Accessors are
// pure and safe to hand out as read-only views.
package vehicle
