package store

import (
	"context"

	"github.com/go-viper/mapstructure/v2"
	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cast"
)

// Position is a persisted window offset in CSS pixels.
type Position struct {
	X float64 `mapstructure:"x" json:"x"`
	Y float64 `mapstructure:"y" json:"y"`
}

// Size is a persisted window size in CSS pixels.
type Size struct {
	Width  float64 `mapstructure:"width" json:"width"`
	Height float64 `mapstructure:"height" json:"height"`
}

// LayoutDefaults holds user-chosen layout overrides stored under the reserved key.
type LayoutDefaults map[string]any

// Key builders for named UI elements.
func PositionKey(name string) string { return "pos:" + name }
func SizeKey(name string) string     { return "size:" + name }
func OpenKey(name string) string     { return "open:" + name }

func decode[T any](v any) mo.Option[T] {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return mo.None[T]()
	}
	if err := decoder.Decode(v); err != nil {
		log.Debugf("decode %T: %v", out, err)
		return mo.None[T]()
	}
	return mo.Some(out)
}

// encode flattens a record into a plain JSON object so the cache and the
// backing store hold the same shape.
func encode(v any) map[string]any {
	out := make(map[string]any)
	if err := mapstructure.Decode(v, &out); err != nil {
		log.Debugf("encode %T: %v", v, err)
	}
	return out
}

func lookup[T any](ctx context.Context, s *Store, key string) mo.Option[T] {
	v, ok := s.Get(ctx, key)
	if !ok || v == nil {
		return mo.None[T]()
	}
	return decode[T](v)
}

// Position returns the saved position of a named element.
func (s *Store) Position(ctx context.Context, name string) mo.Option[Position] {
	return lookup[Position](ctx, s, PositionKey(name))
}

func (s *Store) SetPosition(ctx context.Context, name string, p Position) {
	s.SetKey(ctx, PositionKey(name), encode(p))
}

// Size returns the saved size of a named element.
func (s *Store) Size(ctx context.Context, name string) mo.Option[Size] {
	return lookup[Size](ctx, s, SizeKey(name))
}

func (s *Store) SetSize(ctx context.Context, name string, size Size) {
	s.SetKey(ctx, SizeKey(name), encode(size))
}

// Open reports the saved open flag of a named drawer; absent means closed.
func (s *Store) Open(ctx context.Context, name string) bool {
	v, ok := s.Get(ctx, OpenKey(name))
	if !ok {
		return false
	}
	open, err := cast.ToBoolE(v)
	return err == nil && open
}

func (s *Store) SetOpen(ctx context.Context, name string, open bool) {
	s.SetKey(ctx, OpenKey(name), open)
}

// LayoutDefaults returns the custom layout defaults, if any were saved.
func (s *Store) LayoutDefaults(ctx context.Context) mo.Option[LayoutDefaults] {
	v, ok := s.Get(ctx, constant.CustomLayoutDefaultsKey)
	if !ok {
		return mo.None[LayoutDefaults]()
	}
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return mo.None[LayoutDefaults]()
	}
	return mo.Some(LayoutDefaults(m))
}

// SetLayoutDefaults saves d; an empty value removes the key entirely.
func (s *Store) SetLayoutDefaults(ctx context.Context, d LayoutDefaults) {
	if len(d) == 0 {
		s.ClearLayoutDefaults(ctx)
		return
	}
	s.SetKey(ctx, constant.CustomLayoutDefaultsKey, lo.Assign(map[string]any(d)))
}

func (s *Store) ClearLayoutDefaults(ctx context.Context) {
	s.DeleteKeys(ctx, constant.CustomLayoutDefaultsKey)
}
