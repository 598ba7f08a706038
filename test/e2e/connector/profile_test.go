package connector_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talentwire/jobconnect/pkg/connectsdk"
)

// TestSeekerProfileLifecycle covers create, duplicate rejection, update and
// fetch for the seeker collection.
func TestSeekerProfileLifecycle(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	const whatsapp = "+61400200001"
	seeker := registerSeeker(t, client, whatsapp, "Asha Rao")

	t.Run("duplicate create is rejected", func(t *testing.T) {
		_, err := client.CreateSeeker(ctx, connectsdk.CreateSeekerRequest{
			WhatsAppNumber: whatsapp,
			FullName:       "Impostor",
		})
		var apiErr *connectsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		updated, err := client.UpdateSeeker(ctx, connectsdk.CreateSeekerRequest{
			WhatsAppNumber:  whatsapp,
			FullName:        "Asha Rao",
			Skills:          "go, kubernetes",
			ExperienceYears: "7",
		})
		require.NoError(t, err)
		require.Equal(t, seeker.ID, updated.Seeker.ID)
		require.Equal(t, []string{"go", "kubernetes"}, updated.Seeker.Skills)
		require.Equal(t, 7, updated.Seeker.ExperienceYears)
	})

	t.Run("fetch returns the document", func(t *testing.T) {
		raw, err := client.GetProfile(ctx, "seeker", whatsapp, "")
		require.NoError(t, err)

		var got connectsdk.Seeker
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Equal(t, seeker.ID, got.ID)
	})

	t.Run("unknown handle is a 404", func(t *testing.T) {
		_, err := client.GetProfile(ctx, "seeker", "+61400299999", "")
		var apiErr *connectsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 404, apiErr.StatusCode)
	})

	t.Run("update of a missing profile is a 404", func(t *testing.T) {
		_, err := client.UpdateSeeker(ctx, connectsdk.CreateSeekerRequest{
			WhatsAppNumber: "+61400299999",
			FullName:       "Nobody",
		})
		var apiErr *connectsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 404, apiErr.StatusCode)
	})
}

// TestProviderProfileLifecycle covers the provider collection end to end.
func TestProviderProfileLifecycle(t *testing.T) {
	client, cleanup := setupConnectorContainer(t)
	defer cleanup()
	ctx := t.Context()

	const email = "hr@wattle.test"
	provider := registerProvider(t, client, email, "Wattle Labs")

	t.Run("validation failures are 400", func(t *testing.T) {
		_, err := client.CreateProvider(ctx, connectsdk.CreateProviderRequest{
			Email:  "incomplete@wattle.test",
			HRName: "No Company",
		})
		var apiErr *connectsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		updated, err := client.UpdateProvider(ctx, connectsdk.CreateProviderRequest{
			Email:       email,
			CompanyName: "Wattle Labs Pty Ltd",
			HRName:      "Jordan Lee",
			Website:     "https://wattle.test",
		})
		require.NoError(t, err)
		require.Equal(t, provider.ID, updated.Provider.ID)
		require.Equal(t, "Wattle Labs Pty Ltd", updated.Provider.CompanyName)
	})

	t.Run("fetch returns company fields", func(t *testing.T) {
		raw, err := client.GetProfile(ctx, "provider", "", email)
		require.NoError(t, err)

		var got connectsdk.Provider
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Equal(t, provider.ID, got.ID)
		require.Equal(t, email, got.CompanyEmail)
	})
}
