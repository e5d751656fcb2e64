package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
)

// Bundle is every collection plus the theme preference, in the shape of a
// browser local-storage dump: one top-level key per collection.
type Bundle struct {
	Collections map[model.Kind][]model.Item
	Dark        *bool
}

// DecodeBundle parses a local-storage dump. Collection values may be inline
// JSON arrays or JSON strings holding an array, which is how local storage
// hands them out. Unknown keys are ignored.
func DecodeBundle(data []byte) (Bundle, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Bundle{}, fmt.Errorf("decoding bundle: %w", err)
	}

	b := Bundle{Collections: make(map[model.Kind][]model.Item)}
	for _, kind := range model.Kinds {
		v, ok := raw[kind.CollectionKey()]
		if !ok {
			continue
		}
		v = bytes.TrimSpace(v)
		if len(v) > 0 && v[0] == '"' {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return Bundle{}, fmt.Errorf("decoding %s: %w", kind.CollectionKey(), err)
			}
			v = []byte(s)
		}
		items, err := DecodeItems(kind, v)
		if err != nil {
			return Bundle{}, err
		}
		b.Collections[kind] = items
	}

	if v, ok := raw[store.ThemeKey]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err == nil && (s == "dark" || s == "light") {
			dark := s == "dark"
			b.Dark = &dark
		}
	}
	return b, nil
}

// EncodeBundle writes b with inline arrays under the collection keys.
func EncodeBundle(b Bundle) ([]byte, error) {
	out := make(map[string]any, len(b.Collections)+1)
	for _, kind := range model.Kinds {
		out[kind.CollectionKey()] = storedItems(b.Collections[kind])
	}
	if b.Dark != nil {
		if *b.Dark {
			out[store.ThemeKey] = "dark"
		} else {
			out[store.ThemeKey] = "light"
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
