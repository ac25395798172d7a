// Package theme turns persisted, possibly malformed theme state into the six
// custom-property tokens applied to the page, and applies them idempotently.
package theme

// Token names as written to the sink.
const (
	TokenForeground        = "--card-fg"
	TokenBackgroundVal     = "--card-bg-val"
	TokenBackgroundAlpha   = "--card-bg-alpha"
	TokenBackground        = "--card-bg"
	TokenElementBackground = "--card-el-bg"
	TokenHighlight         = "--card-hl"
)

// TokenMap is the complete token set. Triples use the "r, g, b" form.
type TokenMap struct {
	Foreground        string `json:"--card-fg" jsonschema_description:"Foreground as an r, g, b triple"`
	BackgroundVal     string `json:"--card-bg-val" jsonschema_description:"Background as an r, g, b triple"`
	BackgroundAlpha   string `json:"--card-bg-alpha" jsonschema_description:"Background opacity between 0 and 1"`
	Background        string `json:"--card-bg" jsonschema_description:"Composed rgba() background"`
	ElementBackground string `json:"--card-el-bg" jsonschema_description:"Element background as rgb() or rgba()"`
	Highlight         string `json:"--card-hl" jsonschema_description:"Highlight as an r, g, b triple"`
}

type tokenField struct {
	name string
	ref  func(*TokenMap) *string
}

// fields fixes the iteration order used for writes and serialization.
var fields = []tokenField{
	{TokenForeground, func(t *TokenMap) *string { return &t.Foreground }},
	{TokenBackgroundVal, func(t *TokenMap) *string { return &t.BackgroundVal }},
	{TokenBackgroundAlpha, func(t *TokenMap) *string { return &t.BackgroundAlpha }},
	{TokenBackground, func(t *TokenMap) *string { return &t.Background }},
	{TokenElementBackground, func(t *TokenMap) *string { return &t.ElementBackground }},
	{TokenHighlight, func(t *TokenMap) *string { return &t.Highlight }},
}

// TokenNames lists every recognized token in application order.
func TokenNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// IsToken reports whether name is one of the six recognized tokens.
func IsToken(name string) bool {
	for _, f := range fields {
		if f.name == name {
			return true
		}
	}
	return false
}

// Get returns the value of a named token.
func (t TokenMap) Get(name string) (string, bool) {
	for _, f := range fields {
		if f.name == name {
			return *f.ref(&t), true
		}
	}
	return "", false
}

// Set assigns a named token; unknown names are ignored.
func (t *TokenMap) Set(name, value string) bool {
	for _, f := range fields {
		if f.name == name {
			*f.ref(t) = value
			return true
		}
	}
	return false
}

// Each visits tokens in application order.
func (t TokenMap) Each(fn func(name, value string)) {
	for _, f := range fields {
		fn(f.name, *f.ref(&t))
	}
}
