package theme

import (
	"github.com/spf13/cast"
)

// Sanitize reconciles a raw persisted payload against the presets.
//
// Precedence for the active colors: a non-empty activeColors object, then an
// activeId naming a preset, then an activeId naming one of the custom themes,
// then the legacy "custom" object. Unknown token keys are dropped and values
// are coerced to strings. Sanitize never fails; anything unusable falls back
// to DefaultState.
func Sanitize(raw any) Result {
	state := DefaultState()
	obj, ok := raw.(map[string]any)
	if !ok {
		return Result{State: state, Source: SourceDefault}
	}

	defaults := DefaultTokens()
	state.CustomThemes = sanitizeCustomThemes(obj["customThemes"], defaults)
	activeID := cast.ToString(obj["activeId"])

	if active, ok := nonEmptyObject(obj["activeColors"]); ok {
		state.ActiveColors = sanitizeTokens(active, defaults)
		state.ActiveID = activeID
		return Result{State: state, Source: SourceActiveColors}
	}

	if p, ok := PresetByID(activeID).Get(); ok {
		state.ActiveColors = p.Tokens
		state.ActiveID = p.ID
		return Result{State: state, Source: SourcePreset}
	}

	if ct, ok := state.CustomThemes[activeID]; ok && activeID != CustomID {
		state.ActiveColors = ct.Tokens
		state.ActiveID = activeID
		return Result{State: state, Source: SourceCustomTheme}
	}

	if legacy, ok := nonEmptyObject(obj["custom"]); ok {
		state.ActiveColors = sanitizeTokens(legacy, defaults)
		state.ActiveID = CustomID
		return Result{State: state, Source: SourceLegacyCustom}
	}

	return Result{State: state, Source: SourceDefault}
}

func nonEmptyObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	return m, true
}

// sanitizeTokens overlays the recognized keys of src onto seed.
func sanitizeTokens(src map[string]any, seed TokenMap) TokenMap {
	out := seed
	touchedPair := false

	for _, f := range fields {
		v, ok := src[f.name]
		if !ok || v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			continue
		}
		*f.ref(&out) = s
		if f.name == TokenBackgroundVal || f.name == TokenBackgroundAlpha {
			touchedPair = true
		}
	}

	reconcileBackground(&out, touchedPair, seed)
	return out
}

func sanitizeCustomThemes(v any, seed TokenMap) map[string]CustomTheme {
	out := map[string]CustomTheme{}
	entries, ok := v.(map[string]any)
	if !ok {
		return out
	}

	for id, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		label, ok := obj["label"].(string)
		if !ok {
			continue
		}
		tokens, ok := obj["tokens"].(map[string]any)
		if !ok {
			continue
		}
		out[id] = CustomTheme{Label: label, Tokens: sanitizeTokens(tokens, seed)}
	}
	return out
}
