package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Pjt727/studygroup/data"
	"github.com/Pjt727/studygroup/data/db"
	"github.com/Pjt727/studygroup/roster"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	excludeFlag int32
	jsonFlag    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Prints the roster for a course search",
	Long: `Runs the same search as the roster page, for example "CS 1" or "COMPSCI",
without a query every student is listed`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		logger := log.WithFields(log.Fields{
			"job":        "search",
			"query":      query,
			"normalized": roster.Normalize(query).String(),
		})

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx, false)
		if err != nil {
			logger.WithField("err", err).Error("Could not connect to the database")
			return err
		}
		defer dbPool.Close()

		students, err := roster.NewAggregator(db.New(dbPool)).Search(ctx, excludeFlag, query)
		if err != nil {
			logger.WithField("err", err).Error("Could not search students")
			return err
		}
		logger.WithField("students", len(students)).Debug("Finished search")

		if jsonFlag {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(students)
		}
		printRoster(cmd.OutOrStdout(), students)
		return nil
	},
}

func printRoster(w io.Writer, students []roster.StudentRecord) {
	name := color.New(color.Bold)
	muted := color.New(color.Faint)
	if len(students) == 0 {
		muted.Fprintln(w, "No students found.")
		return
	}
	for _, student := range students {
		name.Fprintf(w, "%s %s", student.FirstName, student.LastName)
		fmt.Fprintf(w, " (#%d)\n", student.ID)
		if len(student.Courses) == 0 {
			muted.Fprintln(w, "  no courses yet")
		}
		for _, course := range student.Courses {
			fmt.Fprintf(w, "  %s %s  %s %d\n", course.SubjectCode, course.CourseNumber, course.Semester, course.Year)
		}
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int32VarP(&excludeFlag, "exclude", "e", 0, "Student id to leave out of the roster")
	searchCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the roster as JSON")
}
