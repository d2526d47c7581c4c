package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUsernameTaken = errors.New("username already taken")

const uniqueViolation = "23505"

// Store adds the operations that need a transaction on top of the plain queries
type Store struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Queries: New(pool),
		pool:    pool,
	}
}

type CreateStudentAccountParams struct {
	Student           InsertStudentParams
	Username          string
	EncryptedPassword string
}

// inserts the student and its login together, nothing is written if the username exists
func (s *Store) CreateStudentAccount(ctx context.Context, arg CreateStudentAccountParams) (int32, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	q := s.WithTx(tx)
	studentID, err := q.InsertStudent(ctx, arg.Student)
	if err != nil {
		return 0, fmt.Errorf("could not insert student: %w", err)
	}
	err = q.AuthInsertCredential(ctx, AuthInsertCredentialParams{
		Username:          arg.Username,
		EncryptedPassword: arg.EncryptedPassword,
		StudentID:         studentID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("could not insert credential: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return studentID, nil
}
