package store

import "strings"

// KeyPrefix starts every key written by the store.
const KeyPrefix = "ptcg"

// Key identifies a Redis key.
type Key struct {
	// Resource is the collection name, e.g. "cards" or "snapshot".
	Resource string

	// ID is optional; for snapshot keys it names the resource.
	ID string
}

// String generates a deterministic key string.
// Format: ptcg:resource[:id]
//
// Example:
//
//	ptcg:snapshot:cards
func (k Key) String() string {
	parts := []string{KeyPrefix}

	if resource := strings.Trim(k.Resource, ":/ "); resource != "" {
		parts = append(parts, resource)
	}
	if k.ID != "" {
		parts = append(parts, k.ID)
	}

	return strings.Join(parts, ":")
}

// CollectionKey is the hash holding every entity of resource.
func CollectionKey(resource string) Key {
	return Key{Resource: resource}
}

// SnapshotKey holds the metadata of the last snapshot of resource.
func SnapshotKey(resource string) Key {
	return Key{Resource: "snapshot", ID: resource}
}
