package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/breeew/aicare-api/internal/core"
	v1 "github.com/breeew/aicare-api/internal/logic/v1"
	"github.com/breeew/aicare-api/pkg/watcher"
)

type Options struct {
	ConfigPath string
	Delay      time.Duration
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "knowledge",
		Short: "manage the MedQuAD knowledge base",
	}
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(&cobra.Command{
		Use:   "import [files...]",
		Short: "import MedQuAD xml documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			defer app.Close()

			for _, path := range args {
				n, err := importFile(cmd.Context(), app, path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d entries from %s\n", n, filepath.Base(path))
			}
			return nil
		},
	})

	watch := &cobra.Command{
		Use:   "watch [dir]",
		Short: "import MedQuAD xml documents as they land in dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return Watch(ctx, app, args[0], opts.Delay)
		},
	}
	watch.Flags().DurationVar(&opts.Delay, "delay", watcher.DEFAULT_DELAY, "quiet period before a changed file is imported")
	cmd.AddCommand(watch)

	return cmd
}

// Watch imports every xml file written to dir until ctx is done. A failed import is
// logged and does not stop the watch.
func Watch(ctx context.Context, app *core.Core, dir string, delay time.Duration) error {
	w, err := watcher.New([]string{".xml"}, delay)
	if err != nil {
		return err
	}
	defer w.Close()

	files, err := w.Watch(ctx, dir)
	if err != nil {
		return err
	}
	slog.Info("watching knowledge directory", slog.String("dir", dir))

	for path := range files {
		n, err := importFile(ctx, app, path)
		if err != nil {
			slog.Error("failed to import knowledge file", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		slog.Info("knowledge file imported", slog.String("path", path), slog.Int("entries", n))
	}
	return nil
}

func importFile(ctx context.Context, app *core.Core, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := v1.NewKnowledgeLogic(ctx, app).Import(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
