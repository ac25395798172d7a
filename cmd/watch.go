// Package cmd implements the panoshell command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/panoshell/panoshell/filesystem"
	"github.com/panoshell/panoshell/gate"
	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/log"
	"github.com/panoshell/panoshell/style"
	"github.com/panoshell/panoshell/theme"
	"github.com/panoshell/panoshell/where"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func init() {
	themeCmd.AddCommand(themeWatchCmd)
	themeWatchCmd.Flags().Bool("fullscreen-exempt", false, "Apply changes immediately while the fullscreen marker exists, even when the viewer is busy")
}

var themeWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print theme tokens whenever the shared theme changes",
	Long: `Print theme tokens whenever the shared theme changes.

While the busy marker file exists the viewer is considered active and token
updates are held back; only the latest one is applied once the marker is removed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var (
			fs     = filesystem.API()
			area   = syncArea()
			g      = gate.New()
			busy   = where.Busy()
			full   = where.Fullscreen()
			exists = func(path string) bool { return lo.Must(afero.Exists(fs, path)) }
		)

		var opts []gate.DeferredOption
		if lo.Must(cmd.Flags().GetBool("fullscreen-exempt")) {
			opts = append(opts, gate.WithExempt(func() bool { return exists(full) }))
		}

		sink := theme.SinkFunc(func(name, value string) {
			cmd.Printf("%s %s\n", style.Fg(style.AccentColor)(name), value)
		})
		g.Subscribe(func(active bool) {
			cmd.Printf("%s viewer %s\n", icon.Get(icon.Watch), style.Faint(lo.Ternary(active, "busy", "idle")))
		})

		if exists(busy) {
			g.Enter()
		}

		w := theme.NewWatcher(area, sink, g, opts...)
		w.Start()
		defer w.Stop()

		handleErr(fs.MkdirAll(where.Storage(), os.ModePerm))
		handleErr(watchFiles(ctx, []string{where.Storage(), where.Temp()}, func(event fsnotify.Event) {
			switch filepath.Clean(event.Name) {
			case where.Sync():
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					area.Reload()
				}
			case busy:
				if event.Has(fsnotify.Create) {
					g.Enter()
				} else if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					g.Leave()
				}
			}
		}))
	},
}

// watchFiles delivers filesystem events for dirs until ctx is done.
func watchFiles(ctx context.Context, dirs []string, handle func(fsnotify.Event)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.Tracef("fs event: %s", event)
			handle(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch: %v", err)
		}
	}
}
