package services

import (
	"context"
	"errors"
	"fmt"

	"cafe-julio/db"
	"cafe-julio/models"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// GetBaristaByEmail looks up a credential row by exact-case email.
func GetBaristaByEmail(ctx context.Context, email string) (*models.BaristaCredential, error) {
	if !db.Ready() {
		return nil, ErrStoreUnavailable
	}
	var b models.BaristaCredential
	err := db.Pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name, is_active, created_at
		FROM barista_credentials WHERE email = $1`,
		email,
	).Scan(&b.ID, &b.Email, &b.PasswordHash, &b.Name, &b.IsActive, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// VerifyBaristaPassword returns the credential when email and password
// match an active row. Unknown email, wrong password and inactive row
// all yield ErrInvalidCredentials so callers cannot enumerate accounts.
func VerifyBaristaPassword(ctx context.Context, email, password string) (*models.BaristaCredential, error) {
	b, err := GetBaristaByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return b, nil
}

// CreateBaristaCredential hashes the password and inserts the row.
// Do not log the plain password.
func CreateBaristaCredential(ctx context.Context, email, password, name string) (int64, error) {
	if !db.Ready() {
		return 0, ErrStoreUnavailable
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO barista_credentials (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id`,
		email, string(hash), name,
	).Scan(&id)
	return id, err
}
