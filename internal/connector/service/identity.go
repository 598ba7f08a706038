package service

import (
	"context"
	"errors"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/store"
)

// IdentityService resolves a (role, contact handle) pair to an account and
// classifies the caller as new or existing. Role dispatch happens here and
// nowhere else.
type IdentityService struct {
	Store store.Store
}

// Resolve looks the handle up in the role's collection. A missing account is
// not an error: it returns (nil, true, nil) so callers can branch on the
// new-user signal.
func (s *IdentityService) Resolve(ctx context.Context, role domain.Role, handle domain.ContactHandle) (*domain.Account, bool, error) {
	account, err := s.lookup(ctx, role, handle)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, true, nil
		}
		return nil, false, err
	}
	return account, false, nil
}

func (s *IdentityService) lookup(ctx context.Context, role domain.Role, handle domain.ContactHandle) (*domain.Account, error) {
	switch role {
	case domain.RoleSeeker:
		seeker, err := s.Store.Seekers().GetSeekerByHandle(ctx, handle)
		if err != nil {
			return nil, err
		}
		return &domain.Account{Role: role, Seeker: &seeker}, nil

	case domain.RoleProvider:
		provider, err := s.Store.Providers().GetProviderByHandle(ctx, handle)
		if err != nil {
			return nil, err
		}
		return &domain.Account{Role: role, Provider: &provider}, nil

	case domain.RoleAdmin:
		admin, err := s.Store.Admins().GetAdminByHandle(ctx, handle)
		if err != nil {
			return nil, err
		}
		return &domain.Account{Role: role, Admin: &admin}, nil

	default:
		return nil, domain.ErrUnknownRole
	}
}
