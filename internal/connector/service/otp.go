package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/notify"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/cryptox"
	"github.com/talentwire/jobconnect/pkg/idx"
	"github.com/talentwire/jobconnect/pkg/slogx"
)

const (
	// DefaultChallengeTTL bounds how long an issued code stays redeemable.
	DefaultChallengeTTL = 5 * time.Minute

	// DefaultMaxAttempts caps failed code submissions per challenge to slow
	// online guessing of a 6-digit code.
	DefaultMaxAttempts = 5
)

var (
	ErrInvalidInput = errors.New("missing or invalid contact identifier")
	ErrDelivery     = errors.New("delivery failed")
	ErrOtpMismatch  = errors.New("otp does not match")
	ErrUserNotFound = errors.New("user not found")
)

// VerifyResult is the outcome of a successful verification.
type VerifyResult struct {
	IsNew   bool
	Account *domain.Account // nil when IsNew
}

// Status renders the new/existing classification.
func (r VerifyResult) Status() string {
	if r.IsNew {
		return "new"
	}
	return "existing"
}

// OTPService issues challenge codes and gates verification. A challenge is a
// server-side record bound to (role, contact handle): TTL-bound, single-use,
// attempt-capped, superseded by re-issue.
type OTPService struct {
	Store    store.Store
	Identity *IdentityService

	Messenger notify.Messenger
	Mailer    notify.Mailer

	ChallengeTTL time.Duration // 0 means DefaultChallengeTTL
	MaxAttempts  int           // 0 means DefaultMaxAttempts
}

func (s *OTPService) ttl() time.Duration {
	if s.ChallengeTTL > 0 {
		return s.ChallengeTTL
	}
	return DefaultChallengeTTL
}

func (s *OTPService) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return DefaultMaxAttempts
}

// Issue generates a fresh 6-digit code for the pair, records its hash, and
// dispatches it through exactly one transport: email when the handle is an
// email address, the messaging gateway otherwise. The plaintext code is
// returned to the caller; whether it ever reaches the HTTP response is the
// boundary's decision (dev mode only).
func (s *OTPService) Issue(ctx context.Context, role domain.Role, handle domain.ContactHandle) (string, error) {
	log := slogx.FromContext(ctx)

	if handle.IsZero() {
		return "", ErrInvalidInput
	}

	code, err := cryptox.GenerateCode()
	if err != nil {
		return "", err
	}
	hash, err := cryptox.HashCode(code)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	challenge := domain.Challenge{
		ID:            idx.New().String(),
		Role:          role,
		ContactHandle: handle.Value(),
		CodeHash:      hash,
		ExpiresAt:     now.Add(s.ttl()),
	}

	// Record the challenge before dispatch so a re-issued code always
	// supersedes this one, whatever the transport does.
	if err := s.Store.Challenges().UpsertChallenge(ctx, challenge); err != nil {
		return "", fmt.Errorf("failed to record challenge: %w", err)
	}

	if handle.IsEmail() {
		err = s.Mailer.SendMail(ctx, handle.Value(), "Your verification code", notify.OTPMessage(code))
	} else {
		err = s.Messenger.SendMessage(ctx, handle.Value(), notify.OTPMessage(code))
	}
	if err != nil {
		log.Error("otp delivery failed",
			slog.String("role", role.String()),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return code, nil
}

// Verify is the verification gate. With bypass set the code check is skipped
// entirely and the result is a pure new/existing classification that never
// fails on account absence. Without bypass the submitted code must match the
// pending challenge, the challenge is consumed, and a missing account is a
// failure.
func (s *OTPService) Verify(ctx context.Context, role domain.Role, handle domain.ContactHandle, code string, bypass bool) (VerifyResult, error) {
	log := slogx.FromContext(ctx)

	if handle.IsZero() {
		return VerifyResult{}, ErrInvalidInput
	}

	if bypass {
		account, isNew, err := s.Identity.Resolve(ctx, role, handle)
		if err != nil {
			return VerifyResult{}, err
		}
		return VerifyResult{IsNew: isNew, Account: account}, nil
	}

	if err := s.checkCode(ctx, role, handle, code); err != nil {
		return VerifyResult{}, err
	}

	account, isNew, err := s.Identity.Resolve(ctx, role, handle)
	if err != nil {
		return VerifyResult{}, err
	}
	if isNew {
		// Correct code, but nobody registered under this handle for this
		// role. The caller sees a generic message; the detail stays here.
		log.Warn("verified otp for unregistered handle",
			slog.String("role", role.String()),
			slog.String("handle", handle.Value()),
		)
		return VerifyResult{}, ErrUserNotFound
	}

	return VerifyResult{IsNew: false, Account: account}, nil
}

// checkCode validates the submitted code against the pending challenge and
// consumes it on success.
func (s *OTPService) checkCode(ctx context.Context, role domain.Role, handle domain.ContactHandle, code string) error {
	challenges := s.Store.Challenges()

	challenge, err := challenges.GetChallenge(ctx, role, handle.Value())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOtpMismatch
		}
		return err
	}

	now := time.Now().UTC()
	if challenge.Consumed() || challenge.Expired(now) {
		return ErrOtpMismatch
	}
	if challenge.Attempts >= s.maxAttempts() {
		return ErrOtpMismatch
	}

	if err := cryptox.VerifyCode(code, challenge.CodeHash); err != nil {
		if errors.Is(err, cryptox.ErrCodeMismatch) {
			if _, incErr := challenges.IncrementChallengeAttempts(ctx, challenge.ID); incErr != nil {
				slogx.FromContext(ctx).Error("failed to record otp attempt", slog.Any("error", incErr))
			}
			return ErrOtpMismatch
		}
		return err
	}

	// Single-use: a consumed challenge can never verify again.
	if err := challenges.ConsumeChallenge(ctx, challenge.ID, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race with a concurrent verification of the same code.
			return ErrOtpMismatch
		}
		return err
	}

	return nil
}
