package ports

// TokenService issues bearer tokens from client-supplied claims.
//
// The claim object is passed through verbatim; the only requirement is a
// non-empty "email" field, since route authorization compares it against
// path parameters. Verification lives in the HTTP middleware.
type TokenService interface {
	Issue(claims map[string]any) (string, error)
}
