// Package history keeps the most recently used Python version strings so the
// version input can suggest them.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultSize bounds the list when the caller passes a non-positive size.
const DefaultSize = 20

// Store is a bounded, most-recent-first list of strings backed by a JSON file.
type Store struct {
	mu    sync.Mutex
	path  string
	size  int
	items []string
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string, size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	s := &Store{path: path, size: size}
	items, err := load(path)
	if err != nil {
		return s, err
	}
	s.items = normalize(items, size)
	return s, nil
}

// Items returns the recent entries, newest first.
func (s *Store) Items() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.items...)
}

// Add moves v to the front and persists the list.
func (s *Store) Add(v string) error {
	if s == nil {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	s.mu.Lock()
	next := normalize(append([]string{v}, s.items...), s.size)
	s.items = next
	s.mu.Unlock()
	return save(s.path, next)
}

// Remove drops v and persists the list. Missing entries are ignored.
func (s *Store) Remove(v string) error {
	if s == nil {
		return nil
	}
	v = strings.TrimSpace(v)
	s.mu.Lock()
	next := make([]string, 0, len(s.items))
	for _, it := range s.items {
		if it != v {
			next = append(next, it)
		}
	}
	s.items = next
	s.mu.Unlock()
	return save(s.path, next)
}

// normalize trims, drops blanks and duplicates (keeping first occurrence)
// and truncates to size.
func normalize(in []string, size int) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == size {
			break
		}
	}
	return out
}

func load(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	return arr, nil
}

func save(path string, list []string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
