package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
)

// ContentHash returns the hex-encoded SHA-256 digest of the
// concatenation of stopsDoc and schedulesDoc, used as the cache key
// for the decoded pair they produce.
func ContentHash(stopsDoc, schedulesDoc []byte) string {
	h := sha256.New()
	h.Write(stopsDoc)
	h.Write(schedulesDoc)
	return hex.EncodeToString(h.Sum(nil))
}

// encodeEntry gob-encodes an Entry for storage as a BLOB.
func encodeEntry(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entry); err != nil {
		return nil, fmt.Errorf("encoding cache entry: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeEntry reverses encodeEntry.
func decodeEntry(raw []byte) (*Entry, error) {
	var entry Entry
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry: %w", err)
	}
	return &entry, nil
}
