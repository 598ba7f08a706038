package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/pkg/idx"
)

// BootstrapService seeds the first admin account. Admins have no public
// creation endpoint; without a seed the admin role would be unreachable.
type BootstrapService struct {
	Store  store.Store
	Logger *slog.Logger

	AdminEmail string
	AdminName  string
}

// EnsureAdmin creates the configured admin if the collection is empty. It is
// a no-op when no admin email is configured or admins already exist.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) error {
	email := strings.TrimSpace(s.AdminEmail)
	if email == "" {
		return nil
	}

	empty, err := s.Store.Admins().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	name := strings.TrimSpace(s.AdminName)
	if name == "" {
		name = "Administrator"
	}

	admin := domain.Admin{
		ID:       idx.New().String(),
		Email:    email,
		FullName: name,
	}
	if err := s.Store.Admins().CreateAdmin(ctx, admin); err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	s.Logger.Info("seeded admin account", "admin_id", admin.ID)
	return nil
}
