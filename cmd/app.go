package cmd

import (
	"github.com/spf13/cobra"
)

// appCmd represents the app command
var appCmd = &cobra.Command{
	Use:   "app",
	Short: "used to run and manage the studygroup service",
	Long: `Groups the commands that serve the site and manage its database
(this command is not ran directly)`,
}

func init() {
	rootCmd.AddCommand(appCmd)
}
