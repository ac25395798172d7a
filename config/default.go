package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/style"
	"github.com/panoshell/panoshell/theme"
	"github.com/panoshell/panoshell/util"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
	// Allowed lists the accepted values of an enumerated setting. Empty means free-form.
	Allowed []string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Panoshell + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Allowed     []string `json:"allowed,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Allowed:     f.Allowed,
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, allowed ...string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Allowed: allowed}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.StoreScope, string(store.ScopePage), "How pages share a bucket.\nbucket shares one bucket per origin, page gives every path its own", store.ScopeModes()...)
	register(key.StoreBackend, string(store.BackendAuto), "Where buckets are persisted.\nauto prefers extension storage and falls back to local storage", store.BackendModes()...)
	register(key.StoreNamespace, constant.RootNamespace, "Root namespace key holding every page bucket")
	register(key.ThemeDefaultPreset, theme.Presets()[0].ID, "Preset applied by \"panoshell theme reset\"", theme.PresetIDs()...)
	register(key.IconsVariant, string(icon.Plain), "Icons variant (nerd requires a nerd font)", icon.AvailableVariants()...)
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Log verbosity, from least to most verbose", logLevels()...)
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

func logLevels() []string {
	return lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) string { return l.String() })
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
	"wrap": func(s string) string { return util.Wrap(s, 0) },
	"join": func(values []string) string {
		return strings.Join(lo.Map(values, func(v string, _ int) string { return style.Fg(color.Yellow)(v) }), ", ")
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Allowed }}
{{ blue "Allowed:" }} {{ join .Allowed }}{{ end }}`))
