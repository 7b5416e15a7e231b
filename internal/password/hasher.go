// Package password wraps bcrypt hashing behind a small type so the
// work factor is injected once at startup instead of being repeated at
// every call site.
package password

import "golang.org/x/crypto/bcrypt"

type Hasher struct {
	cost int
}

// NewHasher clamps out-of-range costs to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt encoding of plain. The salt is generated per
// call, so two hashes of the same plaintext differ.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored encoding. A
// malformed encoding verifies as false rather than erroring, so
// callers cannot tell a corrupt record from a wrong password.
func (h *Hasher) Verify(plain, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}
