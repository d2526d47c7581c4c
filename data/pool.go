package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Pjt727/studygroup/internal/projectpath"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	dbPool     *pgxpool.Pool
	testDbPool *pgxpool.Pool
	pgOnce     sync.Once
	pgTestOnce sync.Once
)

func init() {
	// variables already in the environment win over the .env file
	err := godotenv.Load(filepath.Join(projectpath.Root, ".env"))
	if err != nil {
		log.WithField("err", err).Debug("No .env file loaded")
	}
}

// any non-empty LOCAL marks a development machine
func IsLocal(getenv func(string) string) bool {
	return getenv("LOCAL") != ""
}

// the pool is shared for the lifetime of the process
func NewPool(ctx context.Context, isTest bool) (*pgxpool.Pool, error) {
	if isTest {
		return newPool(ctx, &pgTestOnce, &testDbPool, "TEST_DB_CONN")
	}
	return newPool(ctx, &pgOnce, &dbPool, "DB_CONN")
}

func newPool(ctx context.Context, once *sync.Once, pool **pgxpool.Pool, envKey string) (*pgxpool.Pool, error) {
	var poolErr error = nil
	once.Do(func() {
		connString := os.Getenv(envKey)
		if connString == "" {
			poolErr = fmt.Errorf("%s is not set", envKey)
			log.Error(poolErr)
			return
		}

		pgPool, err := pgxpool.New(ctx, connString)
		if err != nil {
			poolErr = fmt.Errorf("Unable to create connection pool: %w", err)
			log.Error(poolErr)
			return
		}
		if err := pgPool.Ping(ctx); err != nil {
			pgPool.Close()
			poolErr = fmt.Errorf("Unable to reach database: %w", err)
			log.Error(poolErr)
			return
		}
		*pool = pgPool
	})
	if poolErr != nil {
		return nil, poolErr
	}
	if *pool == nil {
		return nil, fmt.Errorf("connection pool for %s failed to initialize", envKey)
	}

	return *pool, nil
}
