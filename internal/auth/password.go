package auth

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way password transform used by the authentication
// service. Verify never reveals why a comparison failed.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
}

const bcryptCost = 12

// BcryptHasher hashes passwords with bcrypt, which generates a fresh salt
// per call and stores it inside the digest.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (BcryptHasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
