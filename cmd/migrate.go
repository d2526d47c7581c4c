package cmd

import (
	"errors"
	"os"

	"github.com/Pjt727/studygroup/data/testdb"
	"github.com/golang-migrate/migrate/v4"
	log "github.com/sirupsen/logrus"
)

func newMigrate(useTestDb bool) (*migrate.Migrate, error) {
	envKey := "DB_CONN"
	if useTestDb {
		envKey = "TEST_DB_CONN"
	}
	conn := os.Getenv(envKey)
	if conn == "" {
		return nil, errors.New(envKey + " is not set")
	}
	return testdb.NewMigrate(conn)
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil || dbErr != nil {
		log.WithFields(log.Fields{"sourceErr": sourceErr, "dbErr": dbErr}).Warn("Could not close migrations")
	}
}
