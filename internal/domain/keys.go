package domain

// CtxKey names values stored on the gin context.
type CtxKey string

const (
	KeyUser          CtxKey = "User"
	KeySessionID     CtxKey = "SessionID"
	KeySessionExpiry CtxKey = "SessionExpiry"
	KeyRequestID     CtxKey = "RequestID"
	KeyCSRFToken     CtxKey = "CSRFToken"
)
