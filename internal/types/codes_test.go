package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTenantID(t *testing.T) {
	id := GenerateTenantID()
	assert.True(t, strings.HasPrefix(id, TenantIDPrefix))
	assert.Len(t, id, len(TenantIDPrefix)+TenantIDSuffixLen)
	assert.True(t, IsTenantID(id))

	suffix := strings.TrimPrefix(id, TenantIDPrefix)
	for _, c := range suffix {
		assert.Contains(t, base36UpperCharset, string(c))
	}
}

func TestGenerateGymCode(t *testing.T) {
	code := GenerateGymCode()
	assert.True(t, strings.HasPrefix(code, GymCodePrefix))
	assert.Len(t, code, len(GymCodePrefix)+GymCodeSuffixLen)

	suffix := strings.TrimPrefix(code, GymCodePrefix)
	for _, c := range suffix {
		assert.Contains(t, base36UpperCharset, string(c))
	}
}

func TestGeneratedCodesVary(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateTenantID()] = true
	}
	// 100 draws from a 36^8 space should never collide.
	assert.Len(t, seen, 100)
}

func TestIsTenantID(t *testing.T) {
	assert.True(t, IsTenantID("tenant_K3F9X2QA"))
	assert.False(t, IsTenantID("tenant_SHORT"))
	assert.False(t, IsTenantID("gym_K3F9X2QA"))
	assert.False(t, IsTenantID(""))
}
