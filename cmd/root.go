// Package cmd implements the panoshell command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/config"
	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/log"
	"github.com/panoshell/panoshell/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	// Persistent overrides for enumerated settings complete to the values the setting accepts.
	for _, o := range []struct{ flag, short, key, usage string }{
		{"icons", "I", key.IconsVariant, "Override the icon variant"},
		{"backend", "", key.StoreBackend, "Override the storage backend"},
		{"scope", "", key.StoreScope, "Override the page scope mode"},
	} {
		k := o.key
		usage := fmt.Sprintf("%s (%s)", o.usage, strings.Join(config.Default[k].Allowed, ", "))
		rootCmd.PersistentFlags().StringP(o.flag, o.short, "", usage)
		lo.Must0(rootCmd.RegisterFlagCompletionFunc(o.flag, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return config.Complete(k, toComplete), cobra.ShellCompDirectiveNoFileComp
		}))
		lo.Must0(viper.BindPFlag(k, rootCmd.PersistentFlags().Lookup(o.flag)))
	}
}

var rootCmd = &cobra.Command{
	Use:   constant.Panoshell,
	Short: "Persisted per-page layout and theme state for panorama viewer pages",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Bright(color.Cyan)).Render("    - Persisted per-page layout and theme state for panorama viewer pages"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Styled(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", icon.Styled(icon.Success), fmt.Sprintf(format, args...))
}
