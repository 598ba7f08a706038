package store

import (
	"context"
	"errors"
	"time"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Seekers() Seekers
	Providers() Providers
	Admins() Admins
	Challenges() Challenges
	Jobs() Jobs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and rolling
	// back on error. Prefer this over Tx for multi-step atomic operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Seekers interface {
	// GetSeekerByID returns a seeker by id.
	GetSeekerByID(ctx context.Context, id string) (domain.Seeker, error)

	// GetSeekerByHandle matches the handle against the whatsapp_number or
	// email column, whichever form the caller supplied.
	GetSeekerByHandle(ctx context.Context, handle domain.ContactHandle) (domain.Seeker, error)

	// CreateSeeker inserts a new seeker. The unique handle indexes make this
	// an atomic insert-if-absent; a conflict surfaces as ErrAlreadyExists.
	CreateSeeker(ctx context.Context, s domain.Seeker) error

	// UpdateSeeker replaces the mutable fields and bumps updated_at.
	UpdateSeeker(ctx context.Context, s domain.Seeker) error

	// IsEmpty returns true if there are no seekers.
	IsEmpty(ctx context.Context) (bool, error)
}

type Providers interface {
	GetProviderByID(ctx context.Context, id string) (domain.Provider, error)
	GetProviderByHandle(ctx context.Context, handle domain.ContactHandle) (domain.Provider, error)

	// CreateProvider inserts a new provider; handle conflicts surface as
	// ErrAlreadyExists.
	CreateProvider(ctx context.Context, p domain.Provider) error

	UpdateProvider(ctx context.Context, p domain.Provider) error
	IsEmpty(ctx context.Context) (bool, error)
}

type Admins interface {
	GetAdminByID(ctx context.Context, id string) (domain.Admin, error)
	GetAdminByHandle(ctx context.Context, handle domain.ContactHandle) (domain.Admin, error)
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// IsEmpty returns true if there are no admins (used by the seed path).
	IsEmpty(ctx context.Context) (bool, error)
}

type Challenges interface {
	// UpsertChallenge replaces any pending challenge for the same
	// (role, contact_handle) pair: re-issuing an OTP invalidates the old code
	// and resets the attempt counter.
	UpsertChallenge(ctx context.Context, c domain.Challenge) error

	// GetChallenge returns the pending challenge for the pair, consumed or
	// not; callers decide what expiry/consumption mean.
	GetChallenge(ctx context.Context, role domain.Role, contactHandle string) (domain.Challenge, error)

	// IncrementChallengeAttempts bumps the failed attempt counter and returns
	// the new count.
	IncrementChallengeAttempts(ctx context.Context, id string) (int, error)

	// ConsumeChallenge marks the challenge as redeemed (single-use).
	ConsumeChallenge(ctx context.Context, id string, at time.Time) error

	// DeleteExpiredChallenges removes expired and consumed rows (housekeeping).
	DeleteExpiredChallenges(ctx context.Context, now time.Time) error
}

type Jobs interface {
	GetJobByID(ctx context.Context, id string) (domain.Job, error)
	CreateJob(ctx context.Context, j domain.Job) error
	ListJobs(ctx context.Context, f domain.JobFilter) ([]domain.Job, error)
	DeleteJob(ctx context.Context, id string) error
}
