package model

// Identity is the authenticated principal derived from validated
// credentials for the duration of one request. It is distinct from the
// stored User record it points at.
type Identity struct {
	UserID   int64
	Username string
}

// PasswordHasher abstracts salted-hash credential handling at the
// identity store boundary.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
