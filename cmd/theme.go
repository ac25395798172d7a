// Package cmd implements the panoshell command line.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/style"
	"github.com/panoshell/panoshell/theme"
	"github.com/panoshell/panoshell/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect and change the theme shared by every page",
}

func loadTheme(area *store.SyncArea) theme.Result {
	return theme.Sanitize(area.Get(constant.ThemeStateKey).OrEmpty())
}

func saveTheme(area *store.SyncArea, state theme.State) {
	handleErr(area.Set(constant.ThemeStateKey, state))
}

func errUnknownTheme(id string, state theme.State) error {
	msg := fmt.Sprintf("unknown theme %s", style.Fg(color.Red)(id))
	suggestions := theme.SuggestPreset(id)
	for customID := range state.CustomThemes {
		if strings.Contains(strings.ToLower(customID), strings.ToLower(id)) {
			suggestions = append(suggestions, customID)
		}
	}
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(suggestions[0]))
	}
	return errors.New(msg)
}

func completionThemes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ids := theme.PresetIDs()
	ids = append(ids, lo.Keys(loadTheme(syncArea()).State.CustomThemes)...)
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func printTokens(cmd *cobra.Command, tokens theme.TokenMap) {
	width := util.Max(lo.Map(theme.TokenNames(), func(n string, _ int) int { return len(n) })...)
	tokens.Each(func(name, value string) {
		swatch := ""
		if hex, ok := color.RGBStringToHex(value).Get(); ok {
			swatch = style.Swatch(hex, "  ")
		} else if rgb, ok := color.ParseTriple(value).Get(); ok {
			swatch = style.Swatch(rgb.Hex(), "  ")
		}
		cmd.Printf("%-*s %s %s\n", width, name, swatch, value)
	})
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
	themeShowCmd.Flags().BoolP("json", "j", false, "Print the sanitized state as JSON")
	themeShowCmd.Flags().BoolP("resolved", "r", false, "With --json, print only the resolved tokens")
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active theme tokens",
	Run: func(cmd *cobra.Command, args []string) {
		result := loadTheme(syncArea())
		tokens := theme.Resolve(result.State)

		if lo.Must(cmd.Flags().GetBool("json")) {
			if lo.Must(cmd.Flags().GetBool("resolved")) {
				printJSON(cmd, tokens)
			} else {
				printJSON(cmd, result.State)
			}
			return
		}

		name := lo.Ternary(result.State.ActiveID != "", result.State.ActiveID, "edited")
		cmd.Printf("%s %s %s\n", icon.Get(icon.Theme), style.Bold(name), style.Faint("("+string(result.Source)+")"))
		printTokens(cmd, tokens)

		cmd.Printf("%s text over a white page reads best in %s\n",
			icon.Styled(icon.Info), theme.ContrastFor(tokens, color.RGB{R: 255, G: 255, B: 255}))
	},
}

func init() {
	themeCmd.AddCommand(themePresetCmd)
}

var themePresetCmd = &cobra.Command{
	Use:               "preset [id]",
	Short:             "Activate a preset or custom theme, asking when no id is given",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionThemes,
	Run: func(cmd *cobra.Command, args []string) {
		area := syncArea()
		state := loadTheme(area).State

		var id string
		if len(args) == 1 {
			id = args[0]
		} else {
			options := append(theme.PresetIDs(), lo.Keys(state.CustomThemes)...)
			prompt := survey.Select{
				Message: "Theme",
				Options: options,
				Default: lo.Ternary(lo.Contains(options, state.ActiveID), state.ActiveID, options[0]),
			}
			handleErr(survey.AskOne(&prompt, &id))
		}

		next, err := state.Activate(id)
		if err != nil {
			handleErr(errUnknownTheme(id, state))
		}
		saveTheme(area, next)
		success("activated %s", style.Fg(color.Purple)(id))
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
}

var themeSetCmd = &cobra.Command{
	Use:   "set <token> <value>",
	Short: "Change one active token",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return theme.TokenNames(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		area := syncArea()
		next, err := loadTheme(area).State.WithToken(args[0], args[1])
		handleErr(err)
		saveTheme(area, next)
		success("set %s to %s", style.Fg(color.Purple)(args[0]), style.Fg(color.Yellow)(args[1]))
	},
}

func init() {
	themeCmd.AddCommand(themeSaveCmd)
	themeSaveCmd.Flags().StringP("label", "l", "", "Human readable name of the theme")
}

var themeSaveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Save the active tokens as a custom theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		area := syncArea()
		next, err := loadTheme(area).State.SaveCustom(args[0], lo.Must(cmd.Flags().GetString("label")))
		handleErr(err)
		saveTheme(area, next)
		success("saved custom theme %s", style.Fg(color.Purple)(args[0]))
	},
}

func init() {
	themeCmd.AddCommand(themeResetCmd)
	themeResetCmd.Flags().BoolP("all", "a", false, "Also forget every custom theme")
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Activate the configured default preset",
	Run: func(cmd *cobra.Command, args []string) {
		area := syncArea()
		id := viper.GetString(key.ThemeDefaultPreset)

		if lo.Must(cmd.Flags().GetBool("all")) {
			handleErr(area.Remove(constant.ThemeStateKey))
		}

		state := loadTheme(area).State
		next, err := state.Activate(id)
		if err != nil {
			handleErr(errUnknownTheme(id, state))
		}
		saveTheme(area, next)
		success("reset theme to %s", style.Fg(color.Purple)(id))
	},
}

func init() {
	themeCmd.AddCommand(themeSchemaCmd)
}

var themeSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the persisted theme state",
	Run: func(cmd *cobra.Command, args []string) {
		printJSON(cmd, theme.Schema())
	},
}
