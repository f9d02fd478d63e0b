package store

import (
	"maps"

	"roast/internal/kv"
)

// NotesKey is the durable-store key for the notes map.
const NotesKey = "atl-coffee-notes"

// Notes maps shop IDs to free-text notes.
type Notes struct {
	byID map[string]string
}

// NewNotes copies m into a Notes value.
func NewNotes(m map[string]string) Notes {
	return Notes{byID: maps.Clone(m)}
}

// LoadNotes reads the notes map, empty when absent or corrupt.
func LoadNotes(s *kv.Store) Notes {
	return NewNotes(kv.Read(s, NotesKey, map[string]string{}))
}

// SaveNotes persists n as a JSON object.
func SaveNotes(s *kv.Store, n Notes) {
	s.Write(NotesKey, n.Map())
}

// Set returns a copy of n with id mapped to text. Empty text is kept as an entry.
func (n Notes) Set(id, text string) Notes {
	next := make(map[string]string, len(n.byID)+1)
	maps.Copy(next, n.byID)
	next[id] = text
	return Notes{byID: next}
}

// Get returns the note for id, or "".
func (n Notes) Get(id string) string {
	return n.byID[id]
}

// Has reports whether an entry exists for id, even an empty one.
func (n Notes) Has(id string) bool {
	_, ok := n.byID[id]
	return ok
}

// Len returns the number of entries.
func (n Notes) Len() int {
	return len(n.byID)
}

// Map returns a copy of the underlying map.
func (n Notes) Map() map[string]string {
	out := make(map[string]string, len(n.byID))
	maps.Copy(out, n.byID)
	return out
}
