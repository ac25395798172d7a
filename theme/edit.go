package theme

import (
	"fmt"

	"github.com/panoshell/panoshell/color"
)

// ValidateToken checks that value has the form expected for the named token.
func ValidateToken(name, value string) error {
	var ok bool
	switch name {
	case TokenForeground, TokenBackgroundVal, TokenHighlight:
		ok = color.ParseTriple(value).IsPresent()
	case TokenBackgroundAlpha:
		ok = parseAlpha(value).IsPresent()
	case TokenBackground, TokenElementBackground:
		ok = color.ParseRGBA(value).IsPresent()
	default:
		return fmt.Errorf("unknown token %q", name)
	}
	if !ok {
		return fmt.Errorf("invalid value %q for %s", value, name)
	}
	return nil
}

// WithToken returns a copy of s with one active token replaced and the background
// tokens reconciled around it. The result no longer claims a preset id.
func (s State) WithToken(name, value string) (State, error) {
	if err := ValidateToken(name, value); err != nil {
		return s, err
	}
	s.ActiveColors = sanitizeTokens(map[string]any{name: value}, s.ActiveColors)
	s.ActiveID = ""
	return s, nil
}

// Activate adopts the tokens of a preset or of one of the custom themes.
func (s State) Activate(id string) (State, error) {
	if p, ok := PresetByID(id).Get(); ok {
		s.ActiveColors = p.Tokens
		s.ActiveID = p.ID
		return s, nil
	}
	if ct, ok := s.CustomThemes[id]; ok {
		s.ActiveColors = ct.Tokens
		s.ActiveID = id
		return s, nil
	}
	return s, fmt.Errorf("unknown theme %q", id)
}

// SaveCustom stores the active colors as a custom theme under id.
func (s State) SaveCustom(id, label string) (State, error) {
	if id == "" || id == CustomID || PresetByID(id).IsPresent() {
		return s, fmt.Errorf("theme id %q is reserved", id)
	}
	if label == "" {
		label = id
	}

	themes := make(map[string]CustomTheme, len(s.CustomThemes)+1)
	for k, v := range s.CustomThemes {
		themes[k] = v
	}
	themes[id] = CustomTheme{Label: label, Tokens: s.ActiveColors}
	s.CustomThemes = themes
	s.ActiveID = id
	return s, nil
}
