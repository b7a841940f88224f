package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acrowfliedover/eGainAssignment/internal/script"
)

var validateCmd = &cobra.Command{
	Use:   "validate [script.yaml]",
	Short: "Check a dialogue script for consistency",
	Long:  `Validates step and option IDs, transition targets, and input prompt wiring, reporting every finding at once.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if !cmd.Flags().Changed("script") && len(args) > 0 {
			scriptPath = args[0]
		}

		if err := runValidate(scriptPath); err != nil {
			fmt.Printf("Validation failed:\n%v\n", err)
			os.Exit(1)
		}
		fmt.Println("Script is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(scriptPath string) error {
	_, err := script.Load(scriptPath)
	return err
}
