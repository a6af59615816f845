package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Passwords hashes and verifies bcrypt password digests.
type Passwords struct {
	cost int
}

// NewPasswords returns a hasher using cost, or bcrypt.DefaultCost when cost is zero.
func NewPasswords(cost int) Passwords {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return Passwords{cost: cost}
}

// Hash derives the bcrypt digest of plain.
func (p Passwords) Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password is empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plain matches the stored digest.
func (p Passwords) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
