// Package scores keeps per-category personal bests in a key-value store.
package scores

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/verte-zerg/humbench/internal/model"
	"github.com/verte-zerg/humbench/internal/store"
)

// Key is the single key holding all bests.
const Key = "human-benchmark-scores"

// KV is the key-value backend the score store persists to.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store tracks the best value per category. Persistence is best effort:
// failures are logged and never reach callers.
type Store struct {
	kv     KV
	logger *log.Logger
}

// New returns a score store backed by kv. Warnings go to the standard logger.
func New(kv KV) *Store {
	return &Store{kv: kv, logger: log.Default()}
}

// WithLogger replaces the logger used for persistence warnings.
func (s *Store) WithLogger(logger *log.Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

type bests struct {
	Reaction *int `json:"reaction,omitempty"`
	Chimp    *int `json:"chimp,omitempty"`
	Typing   *int `json:"typing,omitempty"`
}

func (b *bests) slot(category model.Category) **int {
	switch category {
	case model.Reaction:
		return &b.Reaction
	case model.Chimp:
		return &b.Chimp
	case model.Typing:
		return &b.Typing
	default:
		return nil
	}
}

// Best returns the stored best for category.
func (s *Store) Best(category model.Category) (int, bool) {
	b := s.load()
	slot := b.slot(category)
	if slot == nil || *slot == nil {
		return 0, false
	}
	return **slot, true
}

// Bests returns every stored best keyed by category.
func (s *Store) Bests() map[model.Category]int {
	b := s.load()
	out := make(map[model.Category]int, len(model.Categories))
	for _, c := range model.Categories {
		if v := *b.slot(c); v != nil {
			out[c] = *v
		}
	}
	return out
}

// Record stores value when there is no best yet or value strictly beats it.
func (s *Store) Record(category model.Category, value int) {
	b := s.load()
	slot := b.slot(category)
	if slot == nil {
		s.logger.Printf("scores: unknown category %q", category)
		return
	}
	if *slot != nil && !category.Better(value, **slot) {
		return
	}
	v := value
	*slot = &v
	s.save(b)
}

// Clear removes all stored bests.
func (s *Store) Clear() {
	if err := s.kv.Delete(context.Background(), Key); err != nil {
		s.logger.Printf("scores: failed to clear: %v", err)
	}
}

func (s *Store) load() bests {
	raw, err := s.kv.Get(context.Background(), Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Printf("scores: failed to read: %v", err)
		}
		return bests{}
	}
	var b bests
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		s.logger.Printf("scores: ignoring corrupt data: %v", err)
		return bests{}
	}
	return b
}

func (s *Store) save(b bests) {
	data, err := json.Marshal(b)
	if err != nil {
		s.logger.Printf("scores: failed to encode: %v", err)
		return
	}
	if err := s.kv.Put(context.Background(), Key, string(data)); err != nil {
		s.logger.Printf("scores: failed to write: %v", err)
	}
}
