// Package identity derives the catalog's internal book ids from external keys.
package identity

import (
	"strings"

	"github.com/google/uuid"

	domainerrors "bookshelf/internal/domain/errors"
)

// WorksPrefix is the canonical path prefix of an OpenLibrary work key.
const WorksPrefix = "/works/"

// bookNamespace scopes every derived book id. Changing it re-keys the whole catalog.
var bookNamespace = uuid.MustParse("5b6f0c0e-7f3a-5d2e-9a41-b00c5e1f0a7d")

// NormalizeExternalKey rewrites a bare work identifier ("OL123456W") into
// its path form ("/works/OL123456W"). Any other key is returned unchanged.
func NormalizeExternalKey(key string) string {
	if strings.HasPrefix(key, WorksPrefix) {
		return key
	}
	if strings.HasPrefix(key, "OL") && strings.Contains(key, "W") {
		return WorksPrefix + key
	}

	return key
}

// DeriveBookID returns the name-based (SHA-1, version 5) id of the normalized key.
// The same logical work always yields the same id, from any process.
func DeriveBookID(externalKey string) (uuid.UUID, error) {
	if externalKey == "" {
		return uuid.Nil, domainerrors.ErrInvalidArgument.WrapMessage("external key must not be empty")
	}

	return uuid.NewSHA1(bookNamespace, []byte(NormalizeExternalKey(externalKey))), nil
}

// MustDeriveBookID is DeriveBookID for keys known to be non-empty.
func MustDeriveBookID(externalKey string) uuid.UUID {
	id, err := DeriveBookID(externalKey)
	if err != nil {
		panic(err)
	}

	return id
}
