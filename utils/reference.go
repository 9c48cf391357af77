package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode returns a short human-quotable booking reference,
// e.g. "BK-9F3A21C4". Uniqueness is backed by the DB unique index; the
// 8 hex chars of a fresh UUID make collisions rare enough that insert
// retries handle the rest.
func NewReferenceCode() string {
	id := uuid.NewString()
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
