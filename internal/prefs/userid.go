package prefs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/marquee/internal/storage"
)

// LoadUserID returns the persisted local user id, generating and storing one
// when none exists. A stored id is never replaced. When the write fails the
// generated id is still returned, together with the error, so the session can
// carry on with it.
func LoadUserID(kv storage.KV) (string, error) {
	raw, found, err := kv.Get(KeyUserID)
	if err == nil && found {
		if id := parseUserID(raw); id != "" {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err != nil {
		return id, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, KeyUserID, err)
	}
	if err := kv.Put(KeyUserID, []byte(id)); err != nil {
		return id, fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, KeyUserID, err)
	}
	return id, nil
}

// parseUserID accepts the raw id as well as a JSON-quoted one.
func parseUserID(raw []byte) string {
	return strings.Trim(strings.TrimSpace(string(raw)), `"`)
}
