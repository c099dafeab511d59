package repository

import (
	"context"
	"database/sql"
	"time"
)

// ResetRepo persists password reset codes (single 'code_hash' column).
// Only the SHA-256 hash of the code is stored; the raw code travels to the
// user over the notification channel and is never kept server-side.
type ResetRepo struct{ DB *sql.DB }

func NewResetRepo(db *sql.DB) *ResetRepo { return &ResetRepo{DB: db} }

// Store inserts a reset code hash row for a user, replacing any previous
// pending code for the same user.
func (r *ResetRepo) Store(ctx context.Context, userID uint64, codeHash string, exp time.Time) error {
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM password_resets WHERE user_id=?", userID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO password_resets (user_id, code_hash, expires_at) VALUES (?,?,?)",
		userID, codeHash, exp)
	return err
}

// Consume validates a reset code hash for a user and deletes it so the
// code is single-use.  ErrResetInvalid is returned when no matching,
// unexpired row exists.
func (r *ResetRepo) Consume(ctx context.Context, userID uint64, codeHash string) error {
	var expiresAt time.Time
	err := r.DB.QueryRowContext(ctx,
		"SELECT expires_at FROM password_resets WHERE user_id=? AND code_hash=? LIMIT 1",
		userID, codeHash).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return ErrResetInvalid
	}
	if err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM password_resets WHERE user_id=? AND code_hash=?",
		userID, codeHash); err != nil {
		return err
	}
	if time.Now().UTC().After(expiresAt) {
		return ErrResetInvalid
	}
	return nil
}
