package types

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// UUID prefixes for generated document IDs, one per entity.
const (
	UUID_PREFIX_REQUEST      = "req"
	UUID_PREFIX_SUBSCRIPTION = "subs"
	UUID_PREFIX_PAYMENT      = "pay"
	UUID_PREFIX_GYM          = "gym"
	UUID_PREFIX_PLAN         = "plan"
	UUID_PREFIX_USER         = "user"
)

// GenerateUUID returns a lowercase ULID. ULIDs sort by creation time, which
// keeps store listings in insertion order without a secondary index.
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns a ULID prefixed with an entity tag,
// e.g. "subs_01hv3...".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
