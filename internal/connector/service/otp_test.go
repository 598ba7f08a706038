package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/talentwire/jobconnect/internal/connector/domain"
	"github.com/talentwire/jobconnect/internal/connector/store"
	"github.com/talentwire/jobconnect/internal/connector/store/drivers/sqlite"
)

// recordingTransport captures deliveries instead of sending them.
type recordingTransport struct {
	messages []string // recipients of SendMessage
	mails    []string // recipients of SendMail
	fail     bool
}

func (r *recordingTransport) SendMessage(ctx context.Context, to string, body string) error {
	if r.fail {
		return errors.New("gateway unreachable")
	}
	r.messages = append(r.messages, to)
	return nil
}

func (r *recordingTransport) SendMail(ctx context.Context, to string, subject string, body string) error {
	if r.fail {
		return errors.New("relay unreachable")
	}
	r.mails = append(r.mails, to)
	return nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newOTPService(st store.Store, transport *recordingTransport) *OTPService {
	return &OTPService{
		Store:     st,
		Identity:  &IdentityService{Store: st},
		Messenger: transport,
		Mailer:    transport,
	}
}

func seedSeeker(t *testing.T, st store.Store, handle domain.ContactHandle) domain.Seeker {
	t.Helper()

	profiles := &ProfileService{Store: st}
	seeker, err := profiles.CreateSeeker(context.Background(), SeekerInput{
		WhatsAppNumber: handle.WhatsAppNumber,
		Email:          handle.Email,
		FullName:       "Asha Rao",
		Skills:         "go, sql",
	})
	require.NoError(t, err)
	return seeker
}

func TestIssueRoutesByHandleKind(t *testing.T) {
	st := newTestStore(t)
	transport := &recordingTransport{}
	svc := newOTPService(st, transport)
	ctx := context.Background()

	code, err := svc.Issue(ctx, domain.RoleSeeker, domain.ContactHandle{WhatsAppNumber: "+61400000001"})
	require.NoError(t, err)
	require.Len(t, code, 6)
	require.Equal(t, []string{"+61400000001"}, transport.messages)
	require.Empty(t, transport.mails)

	code, err = svc.Issue(ctx, domain.RoleSeeker, domain.ContactHandle{Email: "asha@example.com"})
	require.NoError(t, err)
	require.Len(t, code, 6)
	require.Equal(t, []string{"asha@example.com"}, transport.mails)
}

func TestIssueRejectsEmptyHandle(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})

	_, err := svc.Issue(context.Background(), domain.RoleSeeker, domain.ContactHandle{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestIssueSurfacesDeliveryFailure(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{fail: true})

	_, err := svc.Issue(context.Background(), domain.RoleSeeker, domain.ContactHandle{WhatsAppNumber: "+61400000001"})
	require.ErrorIs(t, err, ErrDelivery)
}

func TestVerifyCorrectCodeForExistingAccount(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000002"}
	seeker := seedSeeker(t, st, handle)

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	result, err := svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.NoError(t, err)
	require.False(t, result.IsNew)
	require.Equal(t, "existing", result.Status())
	require.NotNil(t, result.Account)
	require.Equal(t, seeker.ID, result.Account.ID())
}

func TestVerifyWrongCodeFails(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000003"}
	seedSeeker(t, st, handle)

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err = svc.Verify(ctx, domain.RoleSeeker, handle, wrong, false)
	require.ErrorIs(t, err, ErrOtpMismatch)

	// The pending challenge survives a wrong guess.
	result, err := svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.NoError(t, err)
	require.False(t, result.IsNew)
}

func TestVerifyWithoutChallengeFails(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000004"}
	seedSeeker(t, st, handle)

	_, err := svc.Verify(context.Background(), domain.RoleSeeker, handle, "123456", false)
	require.ErrorIs(t, err, ErrOtpMismatch)
}

func TestVerifyCodeIsSingleUse(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000005"}
	seedSeeker(t, st, handle)

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.ErrorIs(t, err, ErrOtpMismatch)
}

func TestVerifyExpiredCodeFails(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000006"}
	seedSeeker(t, st, handle)

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	challenge, err := st.Challenges().GetChallenge(ctx, domain.RoleSeeker, handle.Value())
	require.NoError(t, err)
	expired := challenge
	expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, st.Challenges().UpsertChallenge(ctx, expired))

	_, err = svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.ErrorIs(t, err, ErrOtpMismatch)
}

func TestVerifyAttemptCap(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	svc.MaxAttempts = 3
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000007"}
	seedSeeker(t, st, handle)

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for range 3 {
		_, err = svc.Verify(ctx, domain.RoleSeeker, handle, wrong, false)
		require.ErrorIs(t, err, ErrOtpMismatch)
	}

	// Cap reached: even the correct code is refused now.
	_, err = svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.ErrorIs(t, err, ErrOtpMismatch)
}

func TestReissueSupersedesPriorCode(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000008"}
	seedSeeker(t, st, handle)

	first, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)
	second, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	if first != second {
		_, err = svc.Verify(ctx, domain.RoleSeeker, handle, first, false)
		require.ErrorIs(t, err, ErrOtpMismatch)
	}

	result, err := svc.Verify(ctx, domain.RoleSeeker, handle, second, false)
	require.NoError(t, err)
	require.False(t, result.IsNew)
}

func TestVerifyCorrectCodeUnregisteredHandle(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000009"}

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	_, err = svc.Verify(ctx, domain.RoleSeeker, handle, code, false)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestBypassClassifiesWithoutFailing(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000010"}

	// Unregistered: new, no account, no error, no code needed.
	result, err := svc.Verify(ctx, domain.RoleSeeker, handle, "", true)
	require.NoError(t, err)
	require.True(t, result.IsNew)
	require.Equal(t, "new", result.Status())
	require.Nil(t, result.Account)

	seeker := seedSeeker(t, st, handle)

	result, err = svc.Verify(ctx, domain.RoleSeeker, handle, "", true)
	require.NoError(t, err)
	require.False(t, result.IsNew)
	require.Equal(t, seeker.ID, result.Account.ID())
}

func TestRolesResolveIndependently(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	// The same email registered as a provider is still "new" as a seeker.
	email := "shared@example.com"
	profiles := &ProfileService{Store: st}
	_, err := profiles.CreateProvider(ctx, ProviderInput{
		CompanyEmail: email,
		CompanyName:  "Wattle Labs",
		HRName:       "Jordan Lee",
	})
	require.NoError(t, err)

	handle := domain.ContactHandle{Email: email}

	result, err := svc.Verify(ctx, domain.RoleSeeker, handle, "", true)
	require.NoError(t, err)
	require.True(t, result.IsNew)

	result, err = svc.Verify(ctx, domain.RoleProvider, handle, "", true)
	require.NoError(t, err)
	require.False(t, result.IsNew)
	require.Equal(t, domain.RoleProvider, result.Account.Role)
}

func TestChallengesAreScopedToRole(t *testing.T) {
	st := newTestStore(t)
	svc := newOTPService(st, &recordingTransport{})
	ctx := context.Background()

	handle := domain.ContactHandle{WhatsAppNumber: "+61400000011"}
	seedSeeker(t, st, handle)

	code, err := svc.Issue(ctx, domain.RoleSeeker, handle)
	require.NoError(t, err)

	// A code issued for the seeker role cannot verify the provider role.
	_, err = svc.Verify(ctx, domain.RoleProvider, handle, code, false)
	require.ErrorIs(t, err, ErrOtpMismatch)
}
