package http

import (
	"net/http"
	"time"

	"github.com/apitrail/apitrail/internal/store"
	"github.com/apitrail/apitrail/pkg/httpx"
	"github.com/apitrail/apitrail/pkg/trailsdk"
)

// HealthHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trailsdk.HealthResponse	"status, uptime, version"
//	@Router			/health [get].
func HealthHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := trailsdk.HealthResponse{
			Status:  "OK",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and a check of the database connection
//	@Description	Returns 503 while the service cannot reach its dependencies
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trailsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	trailsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &trailsdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "OK"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := trailsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
