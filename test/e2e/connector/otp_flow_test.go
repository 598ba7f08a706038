package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentwire/jobconnect/pkg/connectsdk"
)

// TestFullRegistrationFlow exercises the canonical first-contact journey:
// bypass probe says "new", the profile is created, a real OTP round-trip then
// resolves the registered account.
func TestFullRegistrationFlow(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	const whatsapp = "+61400100001"

	// First contact: bypass classifies the handle as new without failing.
	probe, err := client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
		Bypass:         true,
	})
	require.NoError(t, err)
	require.True(t, probe.IsNewUser)
	require.Equal(t, "new", probe.Status)
	require.Nil(t, probe.User)

	created, err := client.CreateSeeker(ctx, connectsdk.CreateSeekerRequest{
		WhatsAppNumber:  whatsapp,
		FullName:        "Asha Rao",
		Skills:          "go, rust, ts",
		ExperienceYears: "4",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"go", "rust", "ts"}, created.Seeker.Skills)

	// Real OTP round-trip. Dev mode leaks the code in the response.
	issued, err := client.RequestOTP(ctx, connectsdk.RequestOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
	})
	require.NoError(t, err)
	require.Len(t, issued.OTP, 6)

	verified, err := client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
		OTP:            issued.OTP,
	})
	require.NoError(t, err)
	require.False(t, verified.IsNewUser)
	require.Equal(t, "existing", verified.Status)
	require.NotNil(t, verified.User)
}

// TestVerifyRejectsWrongAndReusedCodes covers the failure modes of the gate.
func TestVerifyRejectsWrongAndReusedCodes(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	const whatsapp = "+61400100002"
	registerSeeker(t, client, whatsapp, "Priya Nair")

	issued, err := client.RequestOTP(ctx, connectsdk.RequestOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
	})
	require.NoError(t, err)

	wrong := "000000"
	if wrong == issued.OTP {
		wrong = "000001"
	}

	_, err = client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
		OTP:            wrong,
	})
	var apiErr *connectsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	// The correct code still works after a failed guess...
	_, err = client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
		OTP:            issued.OTP,
	})
	require.NoError(t, err)

	// ...but only once.
	_, err = client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
		OTP:            issued.OTP,
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
}

// TestVerifyUnregisteredHandleFails checks that a correct code for a handle
// with no account behind it is still a 400.
func TestVerifyUnregisteredHandleFails(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	issued, err := client.RequestOTP(ctx, connectsdk.RequestOTPRequest{
		WhatsAppNumber: "+61400100003",
		Role:           "seeker",
	})
	require.NoError(t, err)

	_, err = client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: "+61400100003",
		Role:           "seeker",
		OTP:            issued.OTP,
	})
	var apiErr *connectsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "User not found", apiErr.Message)
}

// TestRolesAreSeparateCollections checks that the same handle registered as
// a provider stays "new" for the seeker role, and that the seeded admin is
// resolvable.
func TestRolesAreSeparateCollections(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	const email = "shared@talentwire.test"
	registerProvider(t, client, email, "Wattle Labs")

	probe, err := client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		Email:  email,
		Role:   "seeker",
		Bypass: true,
	})
	require.NoError(t, err)
	require.True(t, probe.IsNewUser)

	probe, err = client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		Email:  email,
		Role:   "provider",
		Bypass: true,
	})
	require.NoError(t, err)
	require.False(t, probe.IsNewUser)

	// The admin seeded at startup resolves without ever registering.
	probe, err = client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		Email:  adminEmail,
		Role:   "admin",
		Bypass: true,
	})
	require.NoError(t, err)
	require.False(t, probe.IsNewUser)
}

// TestRequestOTPValidation checks the request surface rejects malformed input.
func TestRequestOTPValidation(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	var apiErr *connectsdk.APIError

	// Unknown role.
	_, err := client.RequestOTP(ctx, connectsdk.RequestOTPRequest{
		WhatsAppNumber: "+61400100004",
		Role:           "superadmin",
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	// No handle at all.
	_, err = client.RequestOTP(ctx, connectsdk.RequestOTPRequest{Role: "seeker"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)

	// Both handles at once.
	_, err = client.RequestOTP(ctx, connectsdk.RequestOTPRequest{
		WhatsAppNumber: "+61400100004",
		Email:          "both@talentwire.test",
		Role:           "seeker",
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
}
