package ledger

import (
	"fmt"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
)

// Store loads and saves one whole collection.
type Store interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// KVStore keeps a collection as a JSON array under its collection key.
type KVStore struct {
	kv   store.KV
	kind model.Kind
}

var _ Store = (*KVStore)(nil)

// NewKVStore returns a Store for kind's collection in kv.
func NewKVStore(kv store.KV, kind model.Kind) *KVStore {
	return &KVStore{kv: kv, kind: kind}
}

// Load returns the stored collection, or nil if nothing was stored yet.
func (s *KVStore) Load() ([]model.Item, error) {
	v, ok, err := s.kv.Get(s.kind.CollectionKey())
	if err != nil {
		return nil, err
	}
	if !ok || v == "" {
		return nil, nil
	}
	return DecodeItems(s.kind, []byte(v))
}

// Save replaces the stored collection.
func (s *KVStore) Save(items []model.Item) error {
	data, err := EncodeItems(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.kind.CollectionKey(), err)
	}
	return s.kv.Set(s.kind.CollectionKey(), string(data))
}
