package main

import (
	"fmt"

	"github.com/spf13/cobra"

	chatbot "github.com/acrowfliedover/eGainAssignment"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of egainbot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("egainbot version %s\n", chatbot.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
