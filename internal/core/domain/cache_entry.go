package domain

import "time"

// CacheEntry is the persisted record of one snippet's last successful
// execution. Entries are created on first execution, overwritten whenever a
// differing fingerprint executes, and never pruned automatically.
type CacheEntry struct {
	SnippetID   string    `json:"snippet_id,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Output      string    `json:"output,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
