// Package auth implements the credential primitives behind the signup/login
// flow: bcrypt password digests and signed HS256 session tokens.
package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/merchkeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost factor applied to new password digests.
const HashCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt digest from plain. Hashing the same
// password twice yields different digests (random salt per call).
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A mismatch is not an
// error; the error return is reserved for malformed digests.
func CheckPassword(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrHashing, err)
	}
}
