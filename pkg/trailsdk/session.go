package trailsdk

// Session represents an authenticated session. The session token is
// stateless and cannot be refreshed; when it expires (default seven days)
// the user logs in again for a fresh one.
//
// Sessions are safe for concurrent use: the token never changes after
// creation.
type Session struct {
	client *Client
	token  string
	user   UserProfile
}

// newSession creates a session from a successful auth response.
func newSession(client *Client, auth AuthResponse) *Session {
	return &Session{
		client: client,
		token:  auth.Token,
		user:   auth.User,
	}
}

// Token returns the raw session token, e.g. for persisting across restarts.
func (s *Session) Token() string {
	return s.token
}

// User returns the profile captured when the session was created. It is a
// snapshot; Me fetches the current state.
func (s *Session) User() UserProfile {
	return s.user
}
