// Package cmd implements the panoshell command line.
package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/panoshell/panoshell/color"
	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/style"
	"github.com/panoshell/panoshell/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bucketCmd)
	addURLFlag(bucketCmd)
}

var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Inspect and edit the stored bucket of a page",
}

func init() {
	bucketCmd.AddCommand(bucketGetCmd)
}

var bucketGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print the whole bucket or a single key as JSON",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			if len(args) == 0 {
				printJSON(cmd, s.Bucket(ctx))
				return nil
			}

			v, ok := s.Get(ctx, args[0])
			if !ok {
				return fmt.Errorf("key %s is not set for %s", args[0], s.Scope())
			}
			printJSON(cmd, v)
			return nil
		})
	},
}

func init() {
	bucketCmd.AddCommand(bucketSetCmd)
}

var bucketSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value; JSON values are decoded, anything else is kept as a string",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			s.SetKey(ctx, args[0], parseValue(args[1]))
			success("set %s in %s", style.Fg(color.Purple)(args[0]), style.Fg(color.Yellow)(s.Scope()))
			return nil
		})
	},
}

func init() {
	bucketCmd.AddCommand(bucketDeleteCmd)
}

var bucketDeleteCmd = &cobra.Command{
	Use:     "delete <key>...",
	Short:   "Remove keys from the bucket",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			s.DeleteKeys(ctx, args...)
			success("deleted %s from %s", util.Quantify(len(args), "key", "keys"), style.Fg(color.Yellow)(s.Scope()))
			return nil
		})
	},
}

func init() {
	bucketCmd.AddCommand(bucketClearCmd)
}

var bucketClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the bucket of the page",
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			s.Clear(ctx)
			success("cleared %s", style.Fg(color.Yellow)(s.Scope()))
			return nil
		})
	},
}

func init() {
	bucketCmd.AddCommand(bucketKeysCmd)
}

var bucketKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keys stored for the page",
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(ctx context.Context, s *store.Store) error {
			keys := s.Bucket(ctx).Keys()
			sort.Strings(keys)
			for _, k := range keys {
				cmd.Println(k)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(bucketsCmd)
}

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List every page scope that has stored state",
	Run: func(cmd *cobra.Command, args []string) {
		backend, err := selectBackend()
		handleErr(err)

		scopes, err := store.New(backend, "").Scopes(cmd.Context())
		handleErr(err)

		if len(scopes) == 0 {
			cmd.Printf("%s no buckets stored in %s backend\n", icon.Styled(icon.Info), backend.Name())
			return
		}
		for _, scope := range scopes {
			cmd.Printf("%s %s\n", icon.Get(icon.Bucket), scope)
		}
	},
}
