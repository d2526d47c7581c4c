package cmd

import (
	"errors"

	"github.com/Pjt727/studygroup/data/testdb"
	"github.com/golang-migrate/migrate/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	upTestDb bool
	upReset  bool
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Runs the up migrations",
	Long:  `Runs the up migrations and errors if there the up migrations cannot work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if upReset {
			return resetDb(upTestDb)
		}
		m, err := newMigrate(upTestDb)
		if err != nil {
			log.WithField("err", err).Error("Could not set up migrations")
			return err
		}
		defer closeMigrate(m)

		err = m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database is already up to date")
			return nil
		}
		if err != nil {
			log.WithField("err", err).Error("Could not run up migrations")
			return err
		}
		log.Info("Database has been synced with any up migrations")
		return nil
	},
}

func init() {
	appCmd.AddCommand(upCmd)
	upCmd.Flags().BoolVar(&upTestDb, "test", false, "Migrate the database in TEST_DB_CONN instead")
	upCmd.Flags().BoolVar(&upReset, "reset", false, "Run every down then every up migration (DB_CONN needs LOCAL set)")
}

func resetDb(useTestDb bool) error {
	reset := testdb.ReloadDb
	if useTestDb {
		reset = testdb.SetupTestDb
	}
	if err := reset(); err != nil {
		log.WithFields(log.Fields{"err": err, "test": useTestDb}).Error("Could not reset the database")
		return err
	}
	log.WithField("test", useTestDb).Info("Database has been reset")
	return nil
}
