// Package cmd implements the panoshell command line.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/style"
	"github.com/panoshell/panoshell/theme"
	"github.com/panoshell/panoshell/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print the version only")
}

// versionRow is one labelled line of version output.
type versionRow struct {
	label, value string
}

func versionRows() []versionRow {
	backend := "unavailable"
	if b, err := selectBackend(); err == nil {
		backend = b.Name()
	}

	return []versionRow{
		{"Version", constant.Version},
		{"Revision", constant.Revision},
		{"Built", strings.TrimSpace(constant.BuiltAt) + " by " + constant.BuiltBy},
		{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
		{"Backend", fmt.Sprintf("%s (%s)", backend, viper.GetString(key.StoreBackend))},
		{"Scope", viper.GetString(key.StoreScope)},
		{"Presets", fmt.Sprint(len(theme.Presets()))},
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, build and storage information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		rows := versionRows()
		width := util.Max(lo.Map(rows, func(r versionRow, _ int) int { return len(r.label) })...)

		cmd.Println(style.Fg(color.Purple)("▇▇▇ " + constant.Panoshell))
		cmd.Println()
		for _, r := range rows {
			cmd.Printf("  %s  %s\n", style.Faint(fmt.Sprintf("%-*s", width, r.label)), style.Bold(r.value))
		}
	},
}
