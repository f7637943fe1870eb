// Package bookmark persists the local bookmark list as a flat JSON array.
package bookmark

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/termdeck/internal/logging/events"
)

// Item is one saved link.
type Item struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Summary is the row shown in the bookmark list.
func (i Item) Summary() string {
	return i.Title
}

// Store reads and rewrites a bookmark file. Every Save replaces the whole file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads every bookmark. A missing file yields an empty list and
// os.ErrNotExist; a malformed file yields an empty list and the decode error.
func (s *Store) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		events.Store.ReadFailed(s.path, err)
		return []Item{}, fmt.Errorf("read bookmarks: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		events.Store.ReadFailed(s.path, err)
		return []Item{}, fmt.Errorf("decode bookmarks %s: %w", s.path, err)
	}
	if items == nil {
		items = []Item{}
	}
	events.Store.Read(s.path, len(items))
	return items, nil
}

// Save rewrites the file with items, pretty-printed with two-space indent.
func (s *Store) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		events.Store.WriteFailed(s.path, err)
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			events.Store.WriteFailed(s.path, err)
			return fmt.Errorf("create bookmark dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		events.Store.WriteFailed(s.path, err)
		return fmt.Errorf("write bookmarks: %w", err)
	}
	events.Store.Write(s.path, len(items))
	return nil
}

// ErrNoMatch is returned by Find when no title matches the query.
var ErrNoMatch = errors.New("no bookmark matches")

// Find returns the index of the best fuzzy title match for query. Exact
// case-insensitive substring hits rank ahead of scattered matches.
func Find(items []Item, query string) (int, error) {
	if len(items) == 0 || query == "" {
		return -1, ErrNoMatch
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		return -1, fmt.Errorf("%w %q", ErrNoMatch, query)
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].OriginalIndex, nil
}
