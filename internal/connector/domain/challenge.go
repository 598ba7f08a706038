package domain

import "time"

// Challenge is a pending OTP challenge bound to a (role, contact handle)
// pair. The code itself is never stored; only its Argon2id hash. A challenge
// is single-use: it is marked consumed on successful verification and
// replaced wholesale on re-issue.
type Challenge struct {
	ID            string
	Role          Role
	ContactHandle string
	CodeHash      string
	Attempts      int
	ConsumedAt    *time.Time
	ExpiresAt     time.Time
	CreatedAt     time.Time
}

// Expired reports whether the challenge TTL has lapsed at t.
func (c Challenge) Expired(t time.Time) bool { return t.After(c.ExpiresAt) }

// Consumed reports whether the challenge has already been redeemed.
func (c Challenge) Consumed() bool { return c.ConsumedAt != nil }
