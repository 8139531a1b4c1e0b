// Package operation
package operation

// TokenOperationInterface is the revoked-token (blacklist) collection access
// contract. Tokens are only ever inserted and looked up, never removed.
type TokenOperationInterface interface {
	// RevokeToken blacklists the raw token string, idempotently
	RevokeToken(token string) (err error)
	// IsTokenRevoked reports whether the raw token string is blacklisted
	IsTokenRevoked(token string) (revoked bool, err error)
}
