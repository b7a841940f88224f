package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acrowfliedover/eGainAssignment/internal/presentation/graph"
	"github.com/acrowfliedover/eGainAssignment/internal/script"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [script.yaml]",
	Short: "Export the dialogue graph visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the dialogue script, with input prompts and end steps marked by shape.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if !cmd.Flags().Changed("script") && len(args) > 0 {
			scriptPath = args[0]
		}

		repo, err := script.Load(scriptPath)
		if err != nil {
			fmt.Printf("Error loading script: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(repo.Steps(), repo.InitialStepID(), nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
