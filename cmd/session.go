// Package cmd implements the panoshell command line.
package cmd

import (
	"context"
	"encoding/json"
	"time"

	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/log"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flushTimeout bounds how long a command waits for queued writes on exit.
const flushTimeout = 5 * time.Second

func selectBackend() (store.Backend, error) {
	mode, err := store.ParseBackendMode(viper.GetString(key.StoreBackend))
	if err != nil {
		return nil, err
	}

	backend := store.SelectBackend(store.BackendOptions{
		Mode:       mode,
		Namespace:  viper.GetString(key.StoreNamespace),
		StorageDir: where.Storage(),
		LocalPath:  where.LocalStorage(),
	})
	log.Debugf("using %s backend", backend.Name())
	return backend, nil
}

// openStore opens the bucket of the page given by the --url flag.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	mode, err := store.ParseScopeMode(viper.GetString(key.StoreScope))
	if err != nil {
		return nil, err
	}

	backend, err := selectBackend()
	if err != nil {
		return nil, err
	}

	url := lo.Must(cmd.Flags().GetString("url"))
	return store.New(backend, store.ScopeKey(url, mode)), nil
}

// withStore runs fn against the page store and drains queued writes afterwards.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, s *store.Store) error) {
	s, err := openStore(cmd)
	handleErr(err)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runErr := fn(ctx, s)

	closeCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	closeErr := s.Close(closeCtx)

	handleErr(runErr)
	handleErr(closeErr)
}

func syncArea() *store.SyncArea {
	return store.NewSyncArea(where.Storage())
}

func addURLFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("url", "u", "", "Address of the page whose bucket to use")
	lo.Must0(cmd.MarkPersistentFlagRequired("url"))
}

// parseValue reads JSON when it can and falls back to a plain string.
func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func printJSON(cmd *cobra.Command, v any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(v))
}
