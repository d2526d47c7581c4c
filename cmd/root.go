package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "studygroup",
	Short: "studygroup lets students find classmates taking the same courses",
	Long: `Studygroup serves a small roster site where students log in, search other
students by the courses they take and manage their own enrollments`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
