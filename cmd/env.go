// Package cmd implements the panoshell command line.
package cmd

import (
	"os"
	"sort"
	"strings"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/config"
	"github.com/panoshell/panoshell/style"
	"github.com/panoshell/panoshell/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVar is an environment variable panoshell reads, with the values it accepts.
type envVar struct {
	key, name string
	allowed   []string
}

func envVars() []envVar {
	vars := []envVar{{name: where.EnvConfigPath}}
	for _, k := range config.EnvExposed {
		field := config.Default[k]
		vars = append(vars, envVar{key: k, name: field.Env(), allowed: field.Allowed})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].name < vars[j].name })
	return vars
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables panoshell reads",
	Long:  "List the environment variables panoshell reads, their current values and, for enumerated settings, the values they accept.",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(v.name), "=")
			switch {
			case !present:
				cmd.Print(style.Fg(color.Red)("unset"))
			case v.key != "" && config.Validate(v.key, value) != nil:
				cmd.Print(style.Fg(color.Red)(value), style.Faint(" (invalid)"))
			default:
				cmd.Print(style.Fg(color.Green)(value))
			}
			if len(v.allowed) > 0 {
				cmd.Print(style.Faint("  [" + strings.Join(v.allowed, "|") + "]"))
			}
			cmd.Println()
		}
	},
}
