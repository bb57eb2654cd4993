package trailsdk

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	// Username is the unique public handle (compared byte-exact)
	Username string `json:"username"`

	// Email is the unique login address; matching is case-insensitive
	Email string `json:"email"`

	// Password is the plaintext password; it is hashed before storage and
	// never persisted or logged as-is
	Password string `json:"password"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	// Email is the login address used at registration
	Email string `json:"email"`

	// Password is the plaintext password to verify
	Password string `json:"password"`
}

// AuthResponse is returned from successful register and login calls.
type AuthResponse struct {
	// Token is the signed session token for the Authorization header
	Token string `json:"token"`

	// User is the profile of the account the token belongs to
	User UserProfile `json:"user"`
}

// UserProfile is the outward view of an account. It never carries the
// password hash.
type UserProfile struct {
	// ID is the unique identifier of the account
	ID string `json:"id"`

	// Username is the public handle
	Username string `json:"username"`

	// Email is the normalized login address
	Email string `json:"email"`

	// CreatedAt is the account creation time (RFC3339 format)
	CreatedAt string `json:"created_at"`
}

// ============================================================================
// Progress Types
// ============================================================================

// ProgressRequest is the body for PUT /progress. It carries the complete
// replacement state; the server merges nothing.
type ProgressRequest struct {
	// CurrentLevel is the level the user is on (must be >= 1)
	CurrentLevel int `json:"current_level"`

	// CompletedLevels is the full set of finished level ids; omitting the
	// field clears the set
	CompletedLevels []int `json:"completed_levels"`

	// Points is the absolute points total (must be >= 0); the server does
	// no arithmetic
	Points int `json:"points"`
}

// ProgressResponse is the progress entry as returned from GET and PUT
// /progress.
type ProgressResponse struct {
	// UserID is the account the entry belongs to
	UserID string `json:"user_id"`

	// CurrentLevel is the level the user is on
	CurrentLevel int `json:"current_level"`

	// CompletedLevels is the sorted, duplicate-free set of finished level
	// ids; always present, [] when empty
	CompletedLevels []int `json:"completed_levels"`

	// Points is the accumulated points total
	Points int `json:"points"`

	// CreatedAt is when the entry was first created (RFC3339 format)
	CreatedAt string `json:"created_at"`

	// UpdatedAt is when the entry last changed (RFC3339 format)
	UpdatedAt string `json:"updated_at"`
}

// ============================================================================
// Level Types
// ============================================================================

// Level is one lesson of the tutorial. The full shape is served from
// GET /levels/{id}; list responses carry LevelSummary instead.
type Level struct {
	// ID is the level number, contiguous from 1
	ID int `json:"id"`

	// Title is the lesson headline
	Title string `json:"title"`

	// Summary is a one-paragraph description of what the lesson covers
	Summary string `json:"summary"`

	// Points is the suggested reward for completing the lesson; clients
	// use it to compute the totals they submit
	Points int `json:"points"`

	// KeyPoints are the takeaways the lesson teaches
	KeyPoints []string `json:"key_points"`

	// Steps are the hands-on exercises, usually against this very API
	Steps []Step `json:"steps"`
}

// Step is a single hands-on exercise inside a level.
type Step struct {
	// Instruction tells the learner what to do
	Instruction string `json:"instruction"`

	// Method is the HTTP method to use, when the step is a request
	Method string `json:"method,omitempty"`

	// Path is the request path, when the step is a request
	Path string `json:"path,omitempty"`
}

// LevelSummary is the compact form used in list responses.
type LevelSummary struct {
	// ID is the level number
	ID int `json:"id"`

	// Title is the lesson headline
	Title string `json:"title"`

	// Summary is a one-paragraph description of what the lesson covers
	Summary string `json:"summary"`

	// Points is the suggested reward for completing the lesson
	Points int `json:"points"`
}

// Summarize converts a Level to its list form.
func (l Level) Summarize() LevelSummary {
	return LevelSummary{
		ID:      l.ID,
		Title:   l.Title,
		Summary: l.Summary,
		Points:  l.Points,
	}
}

// ListLevelsResponse is returned from GET /levels.
type ListLevelsResponse struct {
	// Levels holds the catalog in lesson order
	Levels []LevelSummary `json:"levels"`

	// Count is the number of levels in the catalog
	Count int `json:"count"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /health and /readyz endpoints (readyz includes the Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "OK")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
