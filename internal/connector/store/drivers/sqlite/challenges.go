package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

type challengesRepo struct {
	db dbtx
}

func (r *challengesRepo) UpsertChallenge(ctx context.Context, c domain.Challenge) error {
	// ON CONFLICT replaces the pending challenge for the pair atomically, so
	// a re-issued code always supersedes the previous one.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO otp_challenges (id, role, contact_handle, code_hash, attempts, consumed_at, expires_at)
		 VALUES (?, ?, ?, ?, 0, NULL, ?)
		 ON CONFLICT (role, contact_handle) DO UPDATE SET
			id = excluded.id,
			code_hash = excluded.code_hash,
			attempts = 0,
			consumed_at = NULL,
			expires_at = excluded.expires_at,
			created_at = CURRENT_TIMESTAMP`,
		c.ID, c.Role.String(), c.ContactHandle, c.CodeHash, c.ExpiresAt.UTC())
	return err
}

func (r *challengesRepo) GetChallenge(ctx context.Context, role domain.Role, contactHandle string) (domain.Challenge, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, role, contact_handle, code_hash, attempts, consumed_at, expires_at, created_at
		 FROM otp_challenges WHERE role = ? AND contact_handle = ?`,
		role.String(), contactHandle)

	var (
		c        domain.Challenge
		roleStr  string
		consumed sql.NullTime
	)
	err := row.Scan(&c.ID, &roleStr, &c.ContactHandle, &c.CodeHash,
		&c.Attempts, &consumed, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return domain.Challenge{}, mapNotFound(err)
	}
	c.Role = domain.Role(roleStr)
	if consumed.Valid {
		t := consumed.Time
		c.ConsumedAt = &t
	}
	return c, nil
}

func (r *challengesRepo) IncrementChallengeAttempts(ctx context.Context, id string) (int, error) {
	var attempts int
	err := r.db.QueryRowContext(ctx,
		`UPDATE otp_challenges SET attempts = attempts + 1 WHERE id = ?
		 RETURNING attempts`, id).Scan(&attempts)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return attempts, nil
}

func (r *challengesRepo) ConsumeChallenge(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE otp_challenges SET consumed_at = ? WHERE id = ? AND consumed_at IS NULL`,
		at.UTC(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *challengesRepo) DeleteExpiredChallenges(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_challenges WHERE expires_at < ? OR consumed_at IS NOT NULL`,
		now.UTC())
	return err
}
