package theme

// CustomTheme is a user-defined, named token set.
type CustomTheme struct {
	Label  string   `json:"label"`
	Tokens TokenMap `json:"tokens"`
}

// State is the sanitized persisted theme state.
type State struct {
	// ActiveID records which preset or custom theme the active colors came from, if known.
	ActiveID     string                 `json:"activeId,omitempty"`
	ActiveColors TokenMap               `json:"activeColors"`
	CustomThemes map[string]CustomTheme `json:"customThemes"`
}

// DefaultState is the first preset with no custom themes.
func DefaultState() State {
	return State{
		ActiveID:     presets[0].ID,
		ActiveColors: DefaultTokens(),
		CustomThemes: map[string]CustomTheme{},
	}
}

// Source says where Sanitize took the active colors from.
type Source string

const (
	SourceDefault      Source = "default"
	SourceActiveColors Source = "activeColors"
	SourcePreset       Source = "preset"
	SourceCustomTheme  Source = "customTheme"
	SourceLegacyCustom Source = "legacyCustom"
)

// Result is the tagged outcome of Sanitize.
type Result struct {
	State  State
	Source Source
}

// Defaulted reports whether nothing usable was found and the built-in default applies.
func (r Result) Defaulted() bool {
	return r.Source == SourceDefault
}
