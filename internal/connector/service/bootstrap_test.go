package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentwire/jobconnect/internal/connector/domain"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the first admin", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{
			Store:      st,
			Logger:     slog.Default(),
			AdminEmail: "admin@example.com",
		}

		require.NoError(t, svc.EnsureAdmin(ctx))

		admin, err := st.Admins().GetAdminByHandle(ctx, domain.ContactHandle{Email: "admin@example.com"})
		require.NoError(t, err)
		require.Equal(t, "Administrator", admin.FullName)
	})

	t.Run("no-op without configured email", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{Store: st, Logger: slog.Default()}

		require.NoError(t, svc.EnsureAdmin(ctx))

		empty, err := st.Admins().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("no-op when an admin already exists", func(t *testing.T) {
		st := newTestStore(t)
		svc := &BootstrapService{
			Store:      st,
			Logger:     slog.Default(),
			AdminEmail: "first@example.com",
		}
		require.NoError(t, svc.EnsureAdmin(ctx))

		svc.AdminEmail = "second@example.com"
		require.NoError(t, svc.EnsureAdmin(ctx))

		_, err := st.Admins().GetAdminByHandle(ctx, domain.ContactHandle{Email: "second@example.com"})
		require.Error(t, err)
	})
}
