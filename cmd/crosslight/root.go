package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crosslight",
	Short: "Crosslight simulates a two-direction traffic signal controller.",
	Long: `Crosslight simulates a synchronous traffic signal controller for a ` +
		`two-direction crossing. It can run the controller cycle by cycle, ` +
		`serve a live monitoring API, and record every signal change into a ` +
		`SQLite database for later inspection.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// envString returns the value of the environment variable key, or fallback
// when the variable is unset or empty.
func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// envUint returns the environment variable key parsed as an unsigned
// integer, or fallback when the variable is unset or not a number.
func envUint(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}

	return n
}
