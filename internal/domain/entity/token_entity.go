package entity

import "time"

// Token is an issued bearer credential. Only the SHA-256 digest of the
// plaintext is persisted; the plaintext is returned to the client once at
// issuance and cannot be recovered afterwards.
type Token struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token's expiry lies at or before now.
func (t *Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
