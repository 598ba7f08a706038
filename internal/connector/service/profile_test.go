package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/store"
)

func TestCreateSeeker(t *testing.T) {
	st := newTestStore(t)
	svc := &ProfileService{Store: st}
	ctx := context.Background()

	t.Run("normalizes skills and coerces numeric fields", func(t *testing.T) {
		seeker, err := svc.CreateSeeker(ctx, SeekerInput{
			WhatsAppNumber:  "+61400000100",
			FullName:        "Priya Nair",
			Skills:          "go, rust, ts",
			ExperienceYears: "4",
			CurrentCTC:      "900000",
			ExpectedCTC:     "1200000",
		})
		require.NoError(t, err)
		require.NotEmpty(t, seeker.ID)
		require.Equal(t, []string{"go", "rust", "ts"}, seeker.Skills)
		require.Equal(t, 4, seeker.ExperienceYears)
		require.Equal(t, 900000, seeker.CurrentCTC)
		require.Equal(t, 1200000, seeker.ExpectedCTC)
		require.False(t, seeker.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate handle", func(t *testing.T) {
		_, err := svc.CreateSeeker(ctx, SeekerInput{
			WhatsAppNumber: "+61400000100",
			FullName:       "Someone Else",
		})
		require.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.CreateSeeker(ctx, SeekerInput{
			WhatsAppNumber: "+61400000101",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("requires a contact handle", func(t *testing.T) {
		_, err := svc.CreateSeeker(ctx, SeekerInput{FullName: "No Handle"})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects malformed numeric fields", func(t *testing.T) {
		_, err := svc.CreateSeeker(ctx, SeekerInput{
			WhatsAppNumber:  "+61400000102",
			FullName:        "Bad Numbers",
			ExperienceYears: "four",
		})
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.CreateSeeker(ctx, SeekerInput{
			WhatsAppNumber: "+61400000102",
			FullName:       "Bad Numbers",
			CurrentCTC:     "-5",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("empty numeric fields default to zero", func(t *testing.T) {
		seeker, err := svc.CreateSeeker(ctx, SeekerInput{
			Email:    "zero@example.com",
			FullName: "Zero Values",
		})
		require.NoError(t, err)
		require.Zero(t, seeker.ExperienceYears)
		require.Zero(t, seeker.CurrentCTC)
		require.Empty(t, seeker.Skills)
	})
}

func TestUpdateSeeker(t *testing.T) {
	st := newTestStore(t)
	svc := &ProfileService{Store: st}
	ctx := context.Background()

	handle := domain.ContactHandle{Email: "update@example.com"}
	created, err := svc.CreateSeeker(ctx, SeekerInput{
		Email:    handle.Email,
		FullName: "Before Update",
		Skills:   "go",
	})
	require.NoError(t, err)

	t.Run("replaces fields by handle", func(t *testing.T) {
		updated, err := svc.UpdateSeekerByHandle(ctx, handle, SeekerInput{
			Email:           handle.Email,
			FullName:        "After Update",
			Skills:          "go, kubernetes",
			ExperienceYears: "6",
		})
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "After Update", updated.FullName)
		require.Equal(t, []string{"go", "kubernetes"}, updated.Skills)
		require.Equal(t, 6, updated.ExperienceYears)
	})

	t.Run("unknown handle is not found", func(t *testing.T) {
		_, err := svc.UpdateSeekerByHandle(ctx, domain.ContactHandle{Email: "ghost@example.com"}, SeekerInput{
			Email:    "ghost@example.com",
			FullName: "Ghost",
		})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCreateProvider(t *testing.T) {
	st := newTestStore(t)
	svc := &ProfileService{Store: st}
	ctx := context.Background()

	t.Run("creates with company fields", func(t *testing.T) {
		provider, err := svc.CreateProvider(ctx, ProviderInput{
			CompanyEmail:  "hr@wattle.example.com",
			CompanyName:   "Wattle Labs",
			HRName:        "Jordan Lee",
			HRDesignation: "Talent Lead",
		})
		require.NoError(t, err)
		require.NotEmpty(t, provider.ID)
		require.Equal(t, "Wattle Labs", provider.CompanyName)
	})

	t.Run("rejects duplicate company handle", func(t *testing.T) {
		_, err := svc.CreateProvider(ctx, ProviderInput{
			CompanyEmail: "hr@wattle.example.com",
			CompanyName:  "Impostor Pty Ltd",
			HRName:       "Sam Doe",
		})
		require.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("requires company name and hr name", func(t *testing.T) {
		_, err := svc.CreateProvider(ctx, ProviderInput{
			CompanyEmail: "noname@example.com",
			HRName:       "Sam Doe",
		})
		require.ErrorIs(t, err, ErrValidation)

		_, err = svc.CreateProvider(ctx, ProviderInput{
			CompanyEmail: "nohr@example.com",
			CompanyName:  "No HR Pty Ltd",
		})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("same handle may hold seeker and provider", func(t *testing.T) {
		shared := "both@example.com"
		_, err := svc.CreateSeeker(ctx, SeekerInput{Email: shared, FullName: "Dual Role"})
		require.NoError(t, err)

		_, err = svc.CreateProvider(ctx, ProviderInput{
			CompanyEmail: shared,
			CompanyName:  "Dual Pty Ltd",
			HRName:       "Dual Role",
		})
		require.NoError(t, err)
	})
}

func TestUpdateProviderByHandle(t *testing.T) {
	st := newTestStore(t)
	svc := &ProfileService{Store: st}
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000200"}
	created, err := svc.CreateProvider(ctx, ProviderInput{
		CompanyWhatsAppNumber: handle.WhatsAppNumber,
		CompanyName:           "Before Pty Ltd",
		HRName:                "Jordan Lee",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProviderByHandle(ctx, handle, ProviderInput{
		CompanyWhatsAppNumber: handle.WhatsAppNumber,
		CompanyName:           "After Pty Ltd",
		HRName:                "Jordan Lee",
		Website:               "https://after.example.com",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "After Pty Ltd", updated.CompanyName)
	require.Equal(t, "https://after.example.com", updated.Website)
}

func TestSplitCommaList(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"go", "rust", "ts"}, SplitCommaList("go, rust, ts"))
	require.Equal(t, []string{"go"}, SplitCommaList("  go  "))
	require.Empty(t, SplitCommaList(""))
	require.Empty(t, SplitCommaList(" , , "))
}
