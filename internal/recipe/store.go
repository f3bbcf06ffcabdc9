package recipe

import (
	"sort"
	"sync"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/logger"
)

// Document is the latest conversion of one named source.
type Document struct {
	Name    string
	Text    string
	Result  Result
	Version int
}

// MemoryStore keeps the latest conversion per source name. Safe for
// concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
	log  *logger.Logger
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	if log == nil {
		log = logger.Nop()
	}
	return &MemoryStore{docs: make(map[string]*Document), log: log}
}

// Unchanged reports whether text is what was last stored under name.
func (s *MemoryStore) Unchanged(name, text string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[name]
	return ok && d.Text == text
}

// Put stores the conversion of text under name and bumps its version. It
// returns false and keeps the stored document when text is unchanged.
func (s *MemoryStore) Put(name, text string, res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.docs[name]
	if ok && d.Text == text {
		s.log.Debug("document unchanged: %s (v%d)", name, d.Version)
		return false
	}
	version := 1
	if ok {
		version = d.Version + 1
	}
	s.docs[name] = &Document{Name: name, Text: text, Result: res, Version: version}
	s.log.Debug("document stored: %s (v%d)", name, version)
	return true
}

// Get returns the document stored under name.
func (s *MemoryStore) Get(name string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[name]
	if !ok {
		return Document{}, domain.ErrNotFound
	}
	return *d, nil
}

// List returns all documents sorted by name.
func (s *MemoryStore) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
