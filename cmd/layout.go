// Package cmd implements the panoshell command line.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(layoutCmd)
	addURLFlag(layoutCmd)
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Read or change saved element positions, sizes and drawer state",
}

func parseNumbers(args ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	layoutCmd.AddCommand(layoutPositionCmd)
}

var layoutPositionCmd = &cobra.Command{
	Use:   "position <element> [x y]",
	Short: "Print or save the position of an element",
	Args:  cobra.MatchAll(cobra.RangeArgs(1, 3), notExactly(2)),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			name := args[0]
			if len(args) == 1 {
				p, ok := s.Position(ctx, name).Get()
				if !ok {
					return fmt.Errorf("no position saved for %s", name)
				}
				cmd.Printf("%g %g\n", p.X, p.Y)
				return nil
			}

			xy, err := parseNumbers(args[1:]...)
			if err != nil {
				return err
			}
			s.SetPosition(ctx, name, store.Position{X: xy[0], Y: xy[1]})
			success("moved %s to %g, %g", style.Fg(color.Purple)(name), xy[0], xy[1])
			return nil
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutSizeCmd)
}

var layoutSizeCmd = &cobra.Command{
	Use:   "size <element> [width height]",
	Short: "Print or save the size of an element",
	Args:  cobra.MatchAll(cobra.RangeArgs(1, 3), notExactly(2)),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			name := args[0]
			if len(args) == 1 {
				size, ok := s.Size(ctx, name).Get()
				if !ok {
					return fmt.Errorf("no size saved for %s", name)
				}
				cmd.Printf("%gx%g\n", size.Width, size.Height)
				return nil
			}

			wh, err := parseNumbers(args[1:]...)
			if err != nil {
				return err
			}
			s.SetSize(ctx, name, store.Size{Width: wh[0], Height: wh[1]})
			success("resized %s to %gx%g", style.Fg(color.Purple)(name), wh[0], wh[1])
			return nil
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutOpenCmd)
}

var layoutOpenCmd = &cobra.Command{
	Use:       "open <drawer> [true|false]",
	Short:     "Print or save whether a drawer is open",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"true", "false"},
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			name := args[0]
			if len(args) == 1 {
				cmd.Println(s.Open(ctx, name))
				return nil
			}

			open, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid boolean value: %s", args[1])
			}
			s.SetOpen(ctx, name, open)
			success("%s is now %s", style.Fg(color.Purple)(name), lo.Ternary(open, "open", "closed"))
			return nil
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutDefaultsCmd)
	layoutDefaultsCmd.Flags().StringP("set", "s", "", "JSON object to save as the custom layout defaults")
	layoutDefaultsCmd.Flags().BoolP("clear", "c", false, "Remove the custom layout defaults")
	layoutDefaultsCmd.MarkFlagsMutuallyExclusive("set", "clear")
}

var layoutDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print, save or clear the custom layout defaults of a page",
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			switch {
			case lo.Must(cmd.Flags().GetBool("clear")):
				s.ClearLayoutDefaults(ctx)
				success("cleared layout defaults for %s", style.Fg(color.Yellow)(s.Scope()))
			case cmd.Flags().Changed("set"):
				var defaults store.LayoutDefaults
				if err := json.Unmarshal([]byte(lo.Must(cmd.Flags().GetString("set"))), &defaults); err != nil {
					return fmt.Errorf("layout defaults must be a JSON object: %w", err)
				}
				s.SetLayoutDefaults(ctx, defaults)
				success("saved layout defaults for %s", style.Fg(color.Yellow)(s.Scope()))
			default:
				defaults, ok := s.LayoutDefaults(ctx).Get()
				if !ok {
					return fmt.Errorf("no layout defaults saved for %s", s.Scope())
				}
				printJSON(cmd, defaults)
			}
			return nil
		})
	},
}

// notExactly rejects exactly n positional arguments.
func notExactly(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return fmt.Errorf("expected %d or %d arguments, got %d", n-1, n+1, n)
		}
		return nil
	}
}
