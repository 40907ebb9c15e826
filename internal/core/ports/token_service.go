package ports

// TokenService issues and verifies the signed bearer credentials used by the
// auth middleware. Tokens are stateless and time-bounded.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the user id encoded in the token. Malformed, expired and
	// badly signed tokens all fail with the same domain.ErrInvalidToken so
	// callers cannot tell the cases apart.
	Verify(token string) (string, error)
}
