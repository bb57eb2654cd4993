package httpx

type ctxKey string

// Context keys populated by AuthnMiddleware for downstream handlers.
const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUsername ctxKey = "username"
	CtxKeyClaims   ctxKey = "claims" // full jwtx.Claims if you need more
)
