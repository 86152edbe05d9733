package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalworks/crosslight/crossing"
	"github.com/signalworks/crosslight/lights"
	"github.com/signalworks/crosslight/monitoring"
	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/simulation"
)

// runProgressChunk is the number of cycles evaluated between progress bar
// updates.
const runProgressChunk = 1000

var runFlags struct {
	cycles      uint64
	tickDivisor uint64
	stopTicks   uint32
	goTicks     uint32
	waitTicks   uint32
	monitor     bool
	monitorPort int
	open        bool
	output      string
	quiet       bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the signal controller for a number of driving-clock cycles",
	Run: func(_ *cobra.Command, _ []string) {
		runSimulation()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64Var(&runFlags.cycles, "cycles",
		envUint("CROSSLIGHT_CYCLES", 14),
		"number of driving-clock cycles to evaluate")
	runCmd.Flags().Uint64Var(&runFlags.tickDivisor, "tick-divisor",
		envUint("CROSSLIGHT_TICK_DIVISOR", 1),
		"driving-clock cycles per controller tick")
	runCmd.Flags().Uint32Var(&runFlags.stopTicks, "stop-ticks",
		uint32(envUint("CROSSLIGHT_STOP_TICKS",
			uint64(phasectl.DefaultDurations.Stop))),
		"ticks spent in each all-red stop phase")
	runCmd.Flags().Uint32Var(&runFlags.goTicks, "go-ticks",
		uint32(envUint("CROSSLIGHT_GO_TICKS",
			uint64(phasectl.DefaultDurations.Go))),
		"ticks spent in each green phase")
	runCmd.Flags().Uint32Var(&runFlags.waitTicks, "wait-ticks",
		uint32(envUint("CROSSLIGHT_WAIT_TICKS",
			uint64(phasectl.DefaultDurations.Wait))),
		"ticks spent in each yellow phase")
	runCmd.Flags().BoolVar(&runFlags.monitor, "monitor", false,
		"serve the monitoring API while running")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port",
		int(envUint("CROSSLIGHT_MONITOR_PORT", 0)),
		"port for the monitoring API, random if not set")
	runCmd.Flags().BoolVar(&runFlags.open, "open", false,
		"open the monitoring page in a browser")
	runCmd.Flags().StringVar(&runFlags.output, "output",
		envString("CROSSLIGHT_OUTPUT", ""),
		"trace database file name, without the .sqlite3 suffix")
	runCmd.Flags().BoolVar(&runFlags.quiet, "quiet", false,
		"do not print signal changes to stdout")
}

func runSimulation() {
	builder := simulation.MakeBuilder()

	if !runFlags.monitor {
		builder = builder.WithoutMonitoring()
	}

	if runFlags.monitorPort > 0 {
		builder = builder.WithMonitorPort(runFlags.monitorPort)
	}

	if runFlags.output != "" {
		builder = builder.WithOutputFileName(runFlags.output)
	}

	s := builder.Build()
	defer s.Terminate()

	x := crossing.MakeBuilder().
		WithEngine(s.GetEngine()).
		WithTickDivisor(runFlags.tickDivisor).
		WithDurations(phasectl.Durations{
			Stop: runFlags.stopTicks,
			Go:   runFlags.goTicks,
			Wait: runFlags.waitTicks,
		}).
		Build("Crossing")
	s.RegisterCrossing(x)

	if !runFlags.quiet {
		logger := lights.NewChangeLogger(log.New(os.Stdout, "", 0))
		x.Controller.AcceptHook(logger)
	}

	if runFlags.open && runFlags.monitor {
		s.GetMonitor().OpenInBrowser()
	}

	runEngine(s)

	south, west := x.Lights()
	fmt.Printf("ran %d cycles, final phase %s, south %s, west %s\n",
		s.GetEngine().CurrentCycle(), x.Phase(), south, west)
}

func runEngine(s *simulation.Simulation) {
	engine := s.GetEngine()

	var pb *monitoring.ProgressBar
	if monitor := s.GetMonitor(); monitor != nil {
		pb = monitor.CreateProgressBar("Run", runFlags.cycles)
		defer monitor.CompleteProgressBar(pb)
	}

	remaining := runFlags.cycles
	for remaining > 0 {
		chunk := uint64(runProgressChunk)
		if chunk > remaining {
			chunk = remaining
		}

		err := engine.Run(chunk)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run failed: %s\n", err)
			os.Exit(1)
		}

		if pb != nil {
			pb.IncrementFinished(chunk)
		}

		remaining -= chunk
	}

	engine.Finished()
}
