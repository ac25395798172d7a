// Package cmd implements the panoshell command line.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/style"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(colorCmd)
}

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Color conversion helpers used by themes",
}

// parseAnyColor accepts hex, rgb(), rgba() and "r, g, b" triples.
func parseAnyColor(s string) mo.Option[color.RGBA] {
	if c, ok := color.ParseRGBA(s).Get(); ok {
		return mo.Some(c)
	}
	if c, ok := color.ParseTriple(s).Get(); ok {
		return mo.Some(color.RGBA{RGB: c, A: 1})
	}
	return mo.None[color.RGBA]()
}

func init() {
	colorCmd.AddCommand(colorInfoCmd)
}

var colorInfoCmd = &cobra.Command{
	Use:   "info <color>",
	Short: "Show a color in every notation themes use",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		c, ok := parseAnyColor(input).Get()
		if !ok {
			handleErr(fmt.Errorf("cannot parse color %q", input))
		}

		hsl := color.RGBToHSL(c.RGB)
		hsv := color.RGBToHSV(c.RGB)
		rows := [][2]string{
			{"hex", c.Hex()},
			{"triple", c.Triple()},
			{"css", c.CSS()},
			{"alpha", color.FormatAlpha(c.A)},
			{"hsl", fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", hsl.H*360, hsl.S*100, hsl.L*100)},
			{"hsv", fmt.Sprintf("%.0f°, %.0f%%, %.0f%%", hsv.H*360, hsv.S*100, hsv.V*100)},
			{"luminance", strconv.FormatFloat(color.RelativeLuminance(c.RGB), 'f', 3, 64)},
			{"text", color.ContrastText(c.RGB)},
		}

		cmd.Println(style.Swatch(c.Hex(), c.Hex()))
		for _, row := range rows {
			cmd.Printf("%s %s\n", style.Faint(fmt.Sprintf("%-10s", row[0])), row[1])
		}
	},
}

func init() {
	colorCmd.AddCommand(colorHuesCmd)
	colorHuesCmd.Flags().BoolP("hex", "x", false, "Print hex values instead of hsl()")
}

var colorHuesCmd = &cobra.Command{
	Use:   "hues <count>",
	Short: "Print distinct hues for labelling a number of items",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			handleErr(fmt.Errorf("invalid count %q", args[0]))
		}

		asHex := lo.Must(cmd.Flags().GetBool("hex"))
		for i := 0; i < n; i++ {
			hex := color.HueHex(i)
			label := lo.Ternary(asHex, hex, color.HueByIndex(i))
			cmd.Printf("%3d %s %s\n", i, style.Swatch(hex, "  "), label)
		}
	},
}
