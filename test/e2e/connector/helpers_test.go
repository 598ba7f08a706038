package connector_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/talentwire/jobconnect/pkg/connectsdk"
)

/*
 * Common constants and helper functions for connector service end-to-end
 * tests. This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "jobconnect-test:latest"

	adminEmail = "admin@talentwire.test"
	adminName  = "Test Administrator"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Connector Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Connector Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/jobconnect/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupConnectorContainer starts the connector service in a container and
// returns a ready SDK client. The service runs in dev mode so issued codes
// come back in the response instead of leaving through a real transport.
func setupConnectorContainer(t *testing.T) (*connectsdk.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"ENV":                     "dev",
			"LOG_LEVEL":               "info",
			"LOG_FORMAT":              "json",
			"CONNECTOR_DATABASE_FILE": "/tmp/connector.db",
			"CONNECTOR_ADMIN_EMAIL":   adminEmail,
			"CONNECTOR_ADMIN_NAME":    adminName,
			// Relaxed rate limits so rapid test requests don't trip the
			// production defaults
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return connectsdk.NewClient(baseURL), cleanup
}

// registerSeeker runs the full OTP-then-create flow for a fresh seeker and
// returns the created profile.
func registerSeeker(t *testing.T, client *connectsdk.Client, whatsapp, name string) connectsdk.Seeker {
	t.Helper()
	ctx := t.Context()

	probe, err := client.VerifyOTP(ctx, connectsdk.VerifyOTPRequest{
		WhatsAppNumber: whatsapp,
		Role:           "seeker",
		Bypass:         true,
	})
	require.NoError(t, err)
	require.True(t, probe.IsNewUser)

	created, err := client.CreateSeeker(ctx, connectsdk.CreateSeekerRequest{
		WhatsAppNumber: whatsapp,
		FullName:       name,
		Skills:         "go, sql",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Seeker.ID)

	return created.Seeker
}

// registerProvider runs the create flow for a fresh provider.
func registerProvider(t *testing.T, client *connectsdk.Client, email, company string) connectsdk.Provider {
	t.Helper()

	created, err := client.CreateProvider(t.Context(), connectsdk.CreateProviderRequest{
		Email:       email,
		CompanyName: company,
		HRName:      "Jordan Lee",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Provider.ID)

	return created.Provider
}
