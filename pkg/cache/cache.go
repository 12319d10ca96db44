// Package cache provides a content-addressed store for exported documents.
//
// Exports are pure functions of their model and options, so cache entries
// are immutable: the key is a hash over the canonical model JSON and the
// export options, and a hit can be served without revalidation.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache stores exported documents by key.
type Cache interface {
	// Get retrieves a document. The second return value reports a hit.
	Get(key string) ([]byte, bool, error)

	// Set stores a document under key.
	Set(key string, data []byte) error

	// Delete removes a document. Deleting a missing key is not an error.
	Delete(key string) error
}

// DocumentKey derives the cache key for one export: a hash over the
// canonical model bytes and the serialized options.
func DocumentKey(modelJSON []byte, opts any) string {
	optJSON, _ := json.Marshal(opts)
	h := sha256.New()
	h.Write(modelJSON)
	h.Write([]byte{0})
	h.Write(optJSON)
	return fmt.Sprintf("export:%s", hex.EncodeToString(h.Sum(nil)))
}

// Hash computes a SHA-256 hash of the input data as a 64-character hex
// string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
