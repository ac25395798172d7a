package config

import (
	"fmt"
	"strings"

	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/theme"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// validators reject values that would only fail later, when the setting is used.
var validators = map[string]func(value any) error{
	key.StoreScope: func(value any) error {
		_, err := store.ParseScopeMode(cast.ToString(value))
		return err
	},
	key.StoreBackend: func(value any) error {
		_, err := store.ParseBackendMode(cast.ToString(value))
		return err
	},
	key.ThemeDefaultPreset: func(value any) error {
		id := cast.ToString(value)
		if theme.PresetByID(id).IsAbsent() {
			return fmt.Errorf("unknown preset %q", id)
		}
		return nil
	},
	key.IconsVariant: func(value any) error {
		variant := cast.ToString(value)
		if !lo.Contains(icon.AvailableVariants(), variant) {
			return fmt.Errorf("unknown icons variant %q", variant)
		}
		return nil
	},
	key.LogsLevel: func(value any) error {
		_, err := logrus.ParseLevel(cast.ToString(value))
		return err
	},
}

// Validate checks value against the accepted values of k. Keys without a rule accept anything.
// Rejections of enumerated settings name the closest allowed value.
func Validate(k string, value any) error {
	validate, ok := validators[k]
	if !ok {
		return nil
	}
	err := validate(value)
	if err == nil {
		return nil
	}
	if closest, ok := Suggest(k, cast.ToString(value)).Get(); ok {
		return fmt.Errorf("%s: %w, did you mean %q?", k, err, closest)
	}
	return fmt.Errorf("%s: %w", k, err)
}

// Suggest returns the allowed value of k nearest to value by edit distance.
// Free-form keys have no suggestion.
func Suggest(k, value string) mo.Option[string] {
	field, ok := Default[k]
	if !ok || len(field.Allowed) == 0 {
		return mo.None[string]()
	}
	value = strings.ToLower(value)
	return mo.Some(lo.MinBy(field.Allowed, func(a, b string) bool {
		return levenshtein.Distance(value, strings.ToLower(a)) < levenshtein.Distance(value, strings.ToLower(b))
	}))
}

// Complete returns the allowed values of k starting with prefix, for shell completion.
func Complete(k, prefix string) []string {
	return lo.Filter(Default[k].Allowed, func(v string, _ int) bool {
		return strings.HasPrefix(v, prefix)
	})
}
