package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acrowfliedover/eGainAssignment/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pricing conversation interactively",
	Long:  `Starts the pricing assistant on the terminal. Answer by option number or option ID; type q to quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		if !cmd.Flags().Changed("script") && len(args) > 0 {
			scriptPath = args[0]
		}
		sessionID, _ := cmd.Flags().GetString("session")
		sessionDir, _ := cmd.Flags().GetString("session-dir")
		fresh, _ := cmd.Flags().GetBool("fresh")
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")

		err := cli.Execute(cli.RunOptions{
			ScriptPath: scriptPath,
			SessionID:  sessionID,
			SessionDir: sessionDir,
			Fresh:      fresh,
			Debug:      debug,
			Plain:      plain,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("session", "s", "", "Session ID for persistent conversations")
	runCmd.Flags().String("session-dir", "", "Directory for session files (default: .egainbot/sessions)")
	runCmd.Flags().Bool("fresh", false, "Discard any stored state for the session before starting")
	runCmd.Flags().Bool("debug", false, "Enable debug logging to stderr")
	runCmd.Flags().Bool("plain", false, "Disable markdown rendering and colors")

	// Running without a subcommand starts the conversation.
	rootCmd.Run = runCmd.Run
}
