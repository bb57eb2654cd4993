package api_test

import (
	"testing"

	"github.com/apitrail/apitrail/pkg/trailsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies the liveness and readiness probes on a
// freshly started container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupTrailContainer(t)
	defer cleanup()

	client := trailsdk.NewClient(baseURL)

	// Liveness says the process is up
	health, err := client.GetHealth(t.Context())
	assertHealthy(t, health, err)
	require.Nil(t, health.Checks, "Liveness should not probe dependencies")

	t.Logf("Health: status=%s version=%s uptime=%s", health.Status, health.Version, health.Uptime)

	// Readiness also proves the database answers
	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.NotNil(t, ready.Checks, "Readiness should report its dependency checks")
	require.Equal(t, "ok", ready.Checks.Database)

	t.Logf("Readiness: status=%s database=%s", ready.Status, ready.Checks.Database)
}
