package records

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/breeew/aicare-api/internal/core"
	v1 "github.com/breeew/aicare-api/internal/logic/v1"
)

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "records",
		Short: "manage patient records",
	}
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "drop the record log and every stored patient record",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			defer app.Close()

			if err := v1.NewPatientLogic(cmd.Context(), app).Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "patient records cleared")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "print every logged submission",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
			defer app.Close()

			history, err := v1.NewPatientLogic(cmd.Context(), app).History()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), history)
			return nil
		},
	})

	return cmd
}
