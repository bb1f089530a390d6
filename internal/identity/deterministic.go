package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// NodeUUID identifies a navigation node by its slug. Slugs are unique in
// practice; duplicates resolve first-match upstream and never round-trip here.
func NodeUUID(slug string) uuid.UUID {
	return UUID("go-sitenav:node:" + strings.TrimSpace(slug))
}

// RecordUUID identifies a content record by type, node key, and a
// per-collection discriminator such as the upstream row id or source file name.
func RecordUUID(typ, key, discriminator string) uuid.UUID {
	return UUID("go-sitenav:record:" + strings.TrimSpace(typ) + ":" + strings.TrimSpace(key) + ":" + strings.TrimSpace(discriminator))
}
