package policy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/carsim/internal/policy"
	"github.com/san-kum/carsim/internal/vehicle"
)

func at(engineOn bool, gear vehicle.Gear, braking bool) policy.Observed {
	return policy.Observed{EngineOn: engineOn, Selector: gear, BrakeOn: braking}
}

var _ = Describe("Default policy", func() {
	var pol policy.Default

	BeforeEach(func() {
		pol = policy.NewDefault()
	})

	DescribeTable("CanStart",
		func(o policy.Observed, want bool) {
			Expect(pol.CanStart(o, o, o)).To(Equal(want))
		},
		Entry("at rest", at(false, vehicle.Park, false), true),
		Entry("engine already running", at(true, vehicle.Park, false), false),
		Entry("not in park", at(false, vehicle.Drive, false), false),
		Entry("in reverse", at(false, vehicle.Reverse, false), false),
		Entry("brakes applied", at(false, vehicle.Park, true), false),
		Entry("everything wrong", at(true, vehicle.Drive, true), false),
	)

	DescribeTable("CanStop",
		func(o policy.Observed, want bool) {
			Expect(pol.CanStop(o, o)).To(Equal(want))
		},
		Entry("running in drive", at(true, vehicle.Drive, false), true),
		Entry("running in reverse", at(true, vehicle.Reverse, true), true),
		Entry("running in park", at(true, vehicle.Park, false), false),
		Entry("engine off", at(false, vehicle.Drive, false), false),
	)

	DescribeTable("CanAccelerate",
		func(o policy.Observed, want bool) {
			Expect(pol.CanAccelerate(o, o, o)).To(Equal(want))
		},
		Entry("running in drive, brakes released", at(true, vehicle.Drive, false), true),
		Entry("running in reverse, brakes released", at(true, vehicle.Reverse, false), true),
		Entry("engine off", at(false, vehicle.Drive, false), false),
		Entry("in park", at(true, vehicle.Park, false), false),
		Entry("brakes applied", at(true, vehicle.Drive, true), false),
	)

	DescribeTable("CanReverse",
		func(o policy.Observed, want bool) {
			Expect(pol.CanReverse(o, o)).To(Equal(want))
		},
		Entry("in reverse, brakes held", at(false, vehicle.Reverse, true), true),
		Entry("in reverse, brakes released", at(false, vehicle.Reverse, false), false),
		Entry("in drive, brakes held", at(true, vehicle.Drive, true), false),
		Entry("in park, brakes held", at(false, vehicle.Park, true), false),
	)

	It("holds the CanStart characterization over every observable state", func() {
		for _, engineOn := range []bool{false, true} {
			for _, gear := range []vehicle.Gear{vehicle.Park, vehicle.Reverse, vehicle.Drive} {
				for _, braking := range []bool{false, true} {
					o := at(engineOn, gear, braking)
					want := !engineOn && gear == vehicle.Park && !braking
					Expect(pol.CanStart(o, o, o)).To(Equal(want), "state %+v", o)
				}
			}
		}
	})

	It("holds the CanStop characterization over every observable state", func() {
		for _, engineOn := range []bool{false, true} {
			for _, gear := range []vehicle.Gear{vehicle.Park, vehicle.Reverse, vehicle.Drive} {
				o := at(engineOn, gear, false)
				want := engineOn && gear != vehicle.Park
				Expect(pol.CanStop(o, o)).To(Equal(want), "state %+v", o)
			}
		}
	})
})
