package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "egainbot",
	Short: "egainbot is the eGain pricing assistant",
	Long:  `egainbot runs a scripted pricing conversation for eGain products, interactively on the terminal or as an HTTP service.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("script", "", "Path to a YAML dialogue script (default: embedded eGain script)")
}
