package constant

// Reserved storage keys - these identifiers are part of the persisted data contract and must never change.
const (
	// RootNamespace is the single slot holding every page bucket, keyed by page scope.
	RootNamespace = "panoshell:buckets"

	// ThemeStateKey is the synchronized-area key holding the persisted theme state object.
	ThemeStateKey = "panoshell:theme"

	// CustomLayoutDefaultsKey is the in-bucket key for user-defined layout defaults.
	CustomLayoutDefaultsKey = "__customLayoutDefaults"
)

// Storage area names delivered with change notifications.
const (
	AreaSync  = "sync"
	AreaLocal = "local"
)
