/*
Package trailsdk provides a client SDK for the apitrail tutorial service,
plus the wire types and error envelope the server itself serves.

# Client vs Session

The package is organized around two main types:

  - Client: public operations (levels, health) and the auth flows that
    create sessions
  - Session: operations on the authenticated account

Create a Client to reach public endpoints and to register or log in:

	client := trailsdk.NewClient("https://api.example.com")

	levels, err := client.ListLevels(ctx)

	session, err := client.Register(ctx, "ada", "ada@example.com", "correct horse battery")

Use a Session for account-scoped operations:

	profile, err := session.Me(ctx)

	progress, err := session.GetProgress(ctx)

	progress, err = session.UpdateProgress(ctx, trailsdk.ProgressRequest{
		CurrentLevel:    3,
		CompletedLevels: []int{1, 2},
		Points:          150,
	})

# Tokens

Session tokens are stateless JWTs with a fixed lifetime (seven days by
default). There is no refresh flow: when a token expires, every call
returns an *APIError with code "invalid_token" and the user logs in again.
A token can be persisted via Session.Token and revived later:

	session := client.NewSessionFromToken(storedToken)

# Error Handling

Every non-2xx response decodes into *APIError carrying the HTTP status,
the machine-readable code and the human-readable message:

	_, err := client.Login(ctx, email, password)
	var apiErr *trailsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == trailsdk.ErrorCodeInvalidCredentials {
		// wrong email or password
	}

# Progress Semantics

UpdateProgress replaces the whole entry; the server never merges. Clients
own the arithmetic: submit the absolute level set and points total you
want stored. Concurrent writers race under last-write-wins.
*/
package trailsdk
