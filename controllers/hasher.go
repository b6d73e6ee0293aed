package controllers

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way password hash collaborator. Injected so tests can
// swap in a cheap fake.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, candidate string) bool
}

type BcryptHasher struct {
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (BcryptHasher) Compare(digest, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}
