package service

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/breeew/aicare-api/internal/core"
	"github.com/breeew/aicare-api/internal/logic/v1/process"
	"github.com/breeew/aicare-api/internal/plugins"
)

type Options struct {
	ConfigPath string
	Init       string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	// Add flags for generic options
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
	flagSet.StringVarP(&o.Init, "init", "i", "selfhost", "plugins mode installed before serving")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "health journal api service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	defer app.Close()

	if err := plugins.Setup(app.InstallPlugins, opts.Init); err != nil {
		return err
	}

	jobs := process.NewProcess(app)
	jobs.Start()
	defer jobs.Stop()

	return serve(app)
}
