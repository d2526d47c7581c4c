package testdb

import (
	"errors"
	"os"

	"github.com/Pjt727/studygroup/data"
	"github.com/Pjt727/studygroup/internal/projectpath"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var ErrNotLocal = errors.New("reset the database manually or set the LOCAL env variable")

func NewMigrate(conn string) (*migrate.Migrate, error) {
	return migrate.New("file://"+projectpath.Root+"/migrations", conn)
}

// runs every down then every up migration, a dirty database is forced back
// to its last version first
func reset(conn string) error {
	m, err := NewMigrate(conn)
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		if err := m.Force(int(version)); err != nil {
			return err
		}
	}
	err = m.Down()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func SetupTestDb() error {
	testDb := os.Getenv("TEST_DB_CONN")
	if testDb == "" {
		return errors.New("TEST_DB_CONN is not set")
	}
	return reset(testDb)
}

// ReloadDb resets the database in DB_CONN, only on a local machine
func ReloadDb() error {
	return reloadDb(os.Getenv)
}

func reloadDb(getenv func(string) string) error {
	// this is really scary so only reset the actual database if this env variable is set
	//    the real database should be reset manually if ever needed
	if !data.IsLocal(getenv) {
		return ErrNotLocal
	}
	conn := getenv("DB_CONN")
	if conn == "" {
		return errors.New("DB_CONN is not set")
	}
	return reset(conn)
}
