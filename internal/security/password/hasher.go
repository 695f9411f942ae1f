// Package password verifies the admin password against a bcrypt or argon2id hash.
package password

import (
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

var ErrUnknownFormat = errors.New("password: unknown hash format")

const argon2Prefix = "$argon2id$"

// HashBcrypt returns a `$2a$12$...` hash.
func HashBcrypt(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = BcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// HashArgon2 returns a PHC string like `$argon2id$v=19$m=65536,t=3,p=2$...`
func HashArgon2(plain string, p Params) (string, error) {
	return argon2id.CreateHash(plain, p.argon2())
}

// Verify checks plain against a bcrypt or argon2id hash. A mismatch is (false, nil);
// err is reserved for malformed hashes.
func Verify(plain, hash string) (bool, error) {
	switch {
	case strings.HasPrefix(hash, argon2Prefix):
		return argon2id.ComparePasswordAndHash(plain, hash)
	case isBcrypt(hash):
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	default:
		return false, ErrUnknownFormat
	}
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}
