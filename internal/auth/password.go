package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned when password plus pepper exceeds what
// bcrypt accepts.
var ErrPasswordTooLong = errors.New("password is too long")

// MaxHashInput is bcrypt's input limit in bytes.
const MaxHashInput = 72

// PasswordHasher hashes passwords with a server-side pepper appended before
// bcrypt applies its per-record salt.
type PasswordHasher struct {
	pepper string
	cost   int
	// dummy is a hash at the configured cost that no password matches.
	dummy []byte
}

// NewPasswordHasher creates a hasher with the given pepper and bcrypt cost.
func NewPasswordHasher(pepper string, cost int) *PasswordHasher {
	dummy, err := bcrypt.GenerateFromPassword([]byte("unmatched"), cost)
	if err != nil {
		// Only an out-of-range cost fails, and config.Load bounds it.
		dummy, _ = bcrypt.GenerateFromPassword([]byte("unmatched"), bcrypt.DefaultCost)
	}
	return &PasswordHasher{pepper: pepper, cost: cost, dummy: dummy}
}

// Hash returns the bcrypt hash of password+pepper.
func (h *PasswordHasher) Hash(password string) (string, error) {
	input := []byte(password + h.pepper)
	if len(input) > MaxHashInput {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword(input, h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password+pepper matches hash.
func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.pepper)) == nil
}

// CompareUnknown spends the same bcrypt work as Compare for an account that
// does not exist, so a failed login takes as long either way. It always
// reports false.
func (h *PasswordHasher) CompareUnknown(password string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password+h.pepper))
	return false
}
