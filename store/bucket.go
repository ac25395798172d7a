// Package store persists per-page UI state.
//
// Every page scope owns one Bucket inside a single Root held by a Backend. A Store
// caches the active page's bucket in memory and serializes durable writes through
// a FIFO queue, so reads always observe the caller's own earlier writes.
package store

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Bucket maps UI-state keys to JSON-serializable values for one page scope.
type Bucket map[string]any

// Root maps page scope keys to buckets.
type Root map[string]Bucket

// Clone returns a shallow copy; nil becomes an empty bucket.
func (b Bucket) Clone() Bucket {
	out := make(Bucket, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Keys returns the bucket keys in no particular order.
func (b Bucket) Keys() []string {
	return lo.Keys(b)
}

// AsBucket coerces an arbitrary decoded value into a bucket.
// Anything that is not a JSON object becomes an empty bucket.
func AsBucket(v any) Bucket {
	switch m := v.(type) {
	case Bucket:
		return m.Clone()
	case map[string]any:
		return Bucket(m).Clone()
	default:
		return Bucket{}
	}
}

// AsRoot coerces a decoded value into a root, dropping malformed buckets to empty ones.
func AsRoot(v any) Root {
	root := Root{}
	switch m := v.(type) {
	case Root:
		for scope, b := range m {
			root[scope] = b.Clone()
		}
	case map[string]any:
		for scope, b := range m {
			root[scope] = AsBucket(b)
		}
	}
	return root
}

// DecodeRoot parses a JSON blob into a root. Malformed input yields an empty root.
func DecodeRoot(data []byte) Root {
	if len(data) == 0 {
		return Root{}
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Root{}
	}
	return AsRoot(raw)
}

func (r Root) plain() map[string]any {
	out := make(map[string]any, len(r))
	for scope, b := range r {
		out[scope] = map[string]any(b)
	}
	return out
}

// normalizeJSON converts typed values (structs, typed maps) to their decoded JSON form.
func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
