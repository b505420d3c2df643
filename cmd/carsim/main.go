package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/carsim/internal/car"
	"github.com/san-kum/carsim/internal/config"
	"github.com/san-kum/carsim/internal/logging"
	"github.com/san-kum/carsim/internal/metrics"
	"github.com/san-kum/carsim/internal/policy"
	"github.com/san-kum/carsim/internal/scenario"
	"github.com/san-kum/carsim/internal/session"
	"github.com/san-kum/carsim/internal/tui"
	"github.com/san-kum/carsim/internal/vehicle"
)

var (
	configFile string
	scriptFile string
	logLevel   string
	noColor    bool
	jsonOut    bool
	plot       bool
)

// main registers the command tree. The bare command runs the fixed demo
// scenario.
func main() {
	rootCmd := &cobra.Command{
		Use:   "carsim",
		Short: "car subsystem and transition policy simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrive(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	driveCmd := &cobra.Command{
		Use:   "drive [scenario]",
		Short: "run a scenario and report the session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDrive,
	}
	driveCmd.Flags().StringVar(&scriptFile, "script", "", "scenario file path (yaml)")
	driveCmd.Flags().BoolVar(&jsonOut, "json", false, "print session result as json")
	driveCmd.Flags().BoolVar(&plot, "plot", true, "plot speed/brake/steering traces")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive driving session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	policyCmd := &cobra.Command{
		Use:   "policy",
		Short: "print the transition policy decision table",
		RunE:  printPolicyTable,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("built-in scenarios:")
			for _, name := range scenario.List() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	rootCmd.AddCommand(driveCmd, liveCmd, policyCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	// CLI flags override config and environment.
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = noColor
	}
	if cmd.Flags().Changed("plot") {
		cfg.Plot = plot
	}
	return cfg, nil
}

// buildCar wires subsystems, policy, and component loggers into a facade.
func buildCar(log *slog.Logger) *car.Car {
	return car.New(
		logging.Component(log, logging.CompCar),
		vehicle.NewEngine(logging.Component(log, logging.CompEngine)),
		vehicle.NewTransmission(logging.Component(log, logging.CompTransmission)),
		vehicle.NewSteeringSystem(logging.Component(log, logging.CompSteering)),
		vehicle.NewBrakingSystem(logging.Component(log, logging.CompBrakes)),
		policy.NewDefault(),
	)
}

func resolveScenario(cfg *config.Config, args []string) (*scenario.Scenario, error) {
	if scriptFile != "" {
		return scenario.Load(scriptFile)
	}
	name := cfg.Scenario
	if len(args) > 0 {
		name = args[0]
	}
	sc := scenario.Get(name)
	if sc == nil {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, scenario.List())
	}
	return sc, nil
}

func runDrive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := resolveScenario(cfg, args)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	log := logging.New(os.Stdout, level, cfg.NoColor)
	if jsonOut {
		// Keep the json document alone on stdout.
		log = logging.Discard()
	}

	c := buildCar(log)
	runner := session.New(c)
	runner.AddMetric(metrics.NewAcceptanceRate())
	runner.AddMetric(metrics.NewBrakeDuty())
	runner.AddMetric(metrics.NewTopSpeed())

	result, err := runner.Run(context.Background(), sc)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	return report(result, cfg.Plot)
}

func report(result *session.Result, withPlots bool) error {
	fmt.Printf("\nscenario: %s\n", result.Scenario)
	fmt.Printf("steps: %d (accepted %d, rejected %d)\n\n", len(result.Events), result.Accepted, result.Rejected)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tVALUE\tRESULT\tENGINE\tGEAR\tBRAKE\tWHEEL\tSPEED")
	for _, ev := range result.Events {
		res := "rejected"
		if ev.Accepted {
			res = "ok"
		}
		engine := "off"
		if ev.State.EngineActive {
			engine = "on"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%d\t%+d\t%d\n",
			ev.Step, ev.Op, ev.Value, res,
			engine, ev.State.Gear, ev.State.BrakeForce, ev.State.SteeringAngle, ev.State.Speed,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3f\n", name, val)
	}

	if !withPlots || len(result.Events) < 2 {
		return nil
	}

	plotTrace(result, "speed (km/h)", func(s car.Snapshot) float64 { return float64(s.Speed) })
	plotTrace(result, "brake force", func(s car.Snapshot) float64 { return float64(s.BrakeForce) })
	plotTrace(result, "steering angle (deg)", func(s car.Snapshot) float64 { return float64(s.SteeringAngle) })

	return nil
}

func plotTrace(result *session.Result, caption string, pick func(car.Snapshot) float64) {
	data := make([]float64, len(result.Events))
	for i, ev := range result.Events {
		data[i] = pick(ev.State)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
	fmt.Println()
	fmt.Println(graph)
}

func printPolicyTable(cmd *cobra.Command, args []string) error {
	pol := policy.NewDefault()

	yn := func(ok bool) string {
		if ok {
			return "yes"
		}
		return "no"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENGINE\tGEAR\tBRAKES\tSTART\tSTOP\tACCELERATE\tREVERSE")

	for _, engineOn := range []bool{false, true} {
		for _, gear := range []vehicle.Gear{vehicle.Park, vehicle.Reverse, vehicle.Drive} {
			for _, braking := range []bool{false, true} {
				obs := policy.Observed{EngineOn: engineOn, Selector: gear, BrakeOn: braking}
				engine := "off"
				if engineOn {
					engine = "on"
				}
				brakes := "released"
				if braking {
					brakes = "applied"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					engine, gear, brakes,
					yn(pol.CanStart(obs, obs, obs)),
					yn(pol.CanStop(obs, obs)),
					yn(pol.CanAccelerate(obs, obs, obs)),
					yn(pol.CanReverse(obs, obs)),
				)
			}
		}
	}

	return w.Flush()
}
