package cmd

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	downTestDb bool
	downSteps  int
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Runs the down migrations",
	Long:  `Rolls back every migration, or only the last --steps of them`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMigrate(downTestDb)
		if err != nil {
			log.WithField("err", err).Error("Could not set up migrations")
			return err
		}
		defer closeMigrate(m)

		if downSteps > 0 {
			err = m.Steps(-downSteps)
		} else {
			err = m.Down()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Nothing to roll back")
			return nil
		}
		if err != nil {
			log.WithField("err", err).Error("Could not run down migrations")
			return err
		}
		log.WithField("steps", downSteps).Info("Rolled back migrations")
		return nil
	},
}

func init() {
	appCmd.AddCommand(downCmd)
	downCmd.Flags().BoolVar(&downTestDb, "test", false, "Migrate the database in TEST_DB_CONN instead")
	downCmd.Flags().IntVarP(&downSteps, "steps", "n", 0, "Number of migrations to roll back (0 for all)")
}
