package db

import (
	"context"
)

const authGetCredential = `-- name: AuthGetCredential :one
SELECT username, encrypted_password, student_id FROM credentials
WHERE username = $1
`

func (q *Queries) AuthGetCredential(ctx context.Context, username string) (Credential, error) {
	row := q.db.QueryRow(ctx, authGetCredential, username)
	var i Credential
	err := row.Scan(&i.Username, &i.EncryptedPassword, &i.StudentID)
	return i, err
}

const authInsertCredential = `-- name: AuthInsertCredential :exec
INSERT INTO credentials (username, encrypted_password, student_id)
VALUES ($1, $2, $3)
`

type AuthInsertCredentialParams struct {
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	StudentID         int32  `json:"student_id"`
}

func (q *Queries) AuthInsertCredential(ctx context.Context, arg AuthInsertCredentialParams) error {
	_, err := q.db.Exec(ctx, authInsertCredential, arg.Username, arg.EncryptedPassword, arg.StudentID)
	return err
}
