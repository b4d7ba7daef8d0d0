package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/favicon-tools-mcp/internal/watch"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Generate, then regenerate whenever the source image changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.GetViper()

			icon := v.GetString("icon")
			if icon == "" {
				return errors.New("watch needs --icon")
			}

			if err := generate(v, cmd.OutOrStdout(), false); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := &watch.Watcher{
				Path: icon,
				// a replaced source of the same byte size is not detected by
				// the generator, so every change forces a rebuild
				OnChange: func(context.Context) error {
					return generate(v, cmd.OutOrStdout(), true)
				},
			}
			return w.Run(ctx)
		},
	}
	addGenerateFlags(cmd.Flags())
	return cmd
}
