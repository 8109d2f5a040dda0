package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

const uniqueViolation = "23505"

const accountColumns = `id, email, username, password_hash, external_subject, registration_method,
       refresh_token_hash, refresh_token_expires_at, created_at, updated_at`

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	query := `SELECT ` + accountColumns + `
FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	query := `SELECT ` + accountColumns + `
FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (id, email, username, password_hash, external_subject, registration_method, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + accountColumns

	saved, err := scanAccount(r.db.QueryRowContext(ctx, query,
		account.ID, account.Email, account.Username, account.PasswordHash,
		account.ExternalSubject, string(account.RegistrationMethod),
		account.CreatedAt, account.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Account{}, model.ErrAlreadyExists
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, tokenHash []byte, expiresAt time.Time) error {
	const query = `UPDATE accounts
SET refresh_token_hash = $2, refresh_token_expires_at = $3, updated_at = NOW()
WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set refresh token: %w", err)
	}

	return requireAffected(res)
}

func (r *AccountRepository) ClearRefreshToken(ctx context.Context, tokenHash []byte) error {
	const query = `UPDATE accounts
SET refresh_token_hash = NULL, refresh_token_expires_at = NULL, updated_at = NOW()
WHERE refresh_token_hash = $1`

	if _, err := r.db.ExecContext(ctx, query, tokenHash); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	return nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	const query = `UPDATE accounts
SET password_hash = $2, refresh_token_hash = NULL, refresh_token_expires_at = NULL, updated_at = NOW()
WHERE email = $1`

	res, err := r.db.ExecContext(ctx, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return requireAffected(res)
}

func (r *AccountRepository) LinkExternalIdentity(ctx context.Context, id uuid.UUID, subject string) error {
	const query = `UPDATE accounts
SET registration_method = 'external', external_subject = $2, updated_at = NOW()
WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, subject)
	if err != nil {
		return fmt.Errorf("failed to link external identity: %w", err)
	}

	return requireAffected(res)
}

func scanAccount(row *sql.Row) (model.Account, error) {
	var (
		account model.Account
		method  string
	)

	err := row.Scan(
		&account.ID, &account.Email, &account.Username, &account.PasswordHash,
		&account.ExternalSubject, &method,
		&account.RefreshTokenHash, &account.RefreshTokenExpiresAt,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}

	account.RegistrationMethod = model.RegistrationMethod(method)
	return account, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
