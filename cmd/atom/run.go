// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"

	"github.com/bassosimone/atom"
	"github.com/bassosimone/atom/engine"
	"github.com/spf13/cobra"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	props := engine.DefaultWindowProps()
	cfg := engine.NewConfig()
	cfg.MaxFrames = 60
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the headless application loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Logger = root.logger()
			var frames uint64
			stage := engine.StageFunc[engine.Frame, atom.Unit](
				func(ctx context.Context, frame engine.Frame) (atom.Unit, error) {
					frames++
					return atom.Unit{}, nil
				})
			app, err := engine.NewApplication(cfg, props, stage)
			if err != nil {
				return err
			}
			defer app.Close()
			err = app.Run(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames\n", props.Name, frames)
			return err
		},
	}
	cmd.Flags().StringVar(&props.Name, "name", props.Name, "window name")
	cmd.Flags().IntVar(&props.Width, "width", props.Width, "window width")
	cmd.Flags().IntVar(&props.Height, "height", props.Height, "window height")
	cmd.Flags().Float64Var(&cfg.FrameRate, "fps", cfg.FrameRate, "frames per second, zero for unpaced")
	cmd.Flags().Uint64Var(&cfg.MaxFrames, "frames", cfg.MaxFrames, "number of frames, zero to run until interrupted")
	return cmd
}
