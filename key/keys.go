// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Page Storage - these keys select how page buckets are scoped and where they are persisted.
const (
	StoreScope     = "store.scope"
	StoreBackend   = "store.backend"
	StoreNamespace = "store.namespace"
)

// Theming - these keys govern theme resolution defaults.
const (
	ThemeDefaultPreset = "theme.default_preset"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
