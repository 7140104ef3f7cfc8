package auth

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies account passwords with bcrypt. The cost
// is fixed at construction so every hash in one deployment carries the
// same work factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted digest from a plaintext password. A non-nil
// error means the primitive itself failed and the caller must abort,
// never proceed as authenticated.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	return string(b), err
}

// Check reports whether plain matches the stored digest. A mismatch is
// an ordinary false, not an error.
func (h *Hasher) Check(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
