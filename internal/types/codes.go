package types

import (
	"crypto/rand"
	"math/big"
	"strings"

	ierr "github.com/metagym/metagym-api/internal/errors"
)

// Human-readable code formats for tenants and gyms. These are shown in
// emails and typed in at gym check-in terminals, so they stay short; the
// stores are probed for collisions before a code is accepted.
const (
	TenantIDPrefix     = "tenant_"
	TenantIDSuffixLen  = 8
	GymCodePrefix      = "GYM"
	GymCodeSuffixLen   = 6
	base36UpperCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateTenantID returns a tenant ID like "tenant_K3F9X2QA".
func GenerateTenantID() string {
	return TenantIDPrefix + randomBase36Upper(TenantIDSuffixLen)
}

// GenerateGymCode returns a gym code like "GYM7B2K4F".
func GenerateGymCode() string {
	return GymCodePrefix + randomBase36Upper(GymCodeSuffixLen)
}

// IsTenantID reports whether s has the tenant ID shape.
func IsTenantID(s string) bool {
	return strings.HasPrefix(s, TenantIDPrefix) && len(s) == len(TenantIDPrefix)+TenantIDSuffixLen
}

func randomBase36Upper(n int) string {
	max := big.NewInt(int64(len(base36UpperCharset)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		// rand.Int rejection-samples, so every charset character is
		// equally likely.
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms; treat it as fatal.
			panic(ierr.WithError(err).
				WithHint("Failed to read random bytes").
				Mark(ierr.ErrSystem))
		}
		b.WriteByte(base36UpperCharset[idx.Int64()])
	}
	return b.String()
}
