// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command journalfig renders the journalfig example figure and lists
// the available style sheets and colormaps.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/journalfig/base/logx"
	"cogentcore.org/journalfig/cmd/journalfig/cmd"
	"cogentcore.org/journalfig/cmd/journalfig/config"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRoot(config.Default()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRoot(c *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "journalfig",
		Short:        "Publication-ready figures for journals",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "print info messages")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "print only errors")

	example := &cobra.Command{
		Use:   "example",
		Short: "Render the example figure",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			if c.Watch {
				return cmd.Watch(cc.Context(), c)
			}
			return cmd.Example(c)
		},
	}
	ef := example.Flags()
	ef.StringVarP(&c.Output, "output", "o", c.Output, "output file; its extension selects the format")
	ef.StringVar(&c.Style, "style", c.Style, "style sheet name")
	ef.StringSliceVar(&c.Apply, "apply", c.Apply, "elements the style sheet is applied to")
	ef.StringVar(&c.Colormap, "colormap", c.Colormap, "colormap of the lines and colorbar")
	ef.Float64Var(&c.Width, "width", c.Width, "subplot area width")
	ef.Float64Var(&c.Height, "height", c.Height, "subplot area height")
	ef.StringVar(&c.Units, "units", c.Units, "size units: cm, inch, mm or pt")
	ef.Float64Var(&c.DPI, "dpi", c.DPI, "raster resolution; 0 keeps the style value")
	ef.BoolVar(&c.Gray, "gray", c.Gray, "write a grayscale proof")
	ef.IntVar(&c.Thumb, "thumb", c.Thumb, "fit the image into a square of this many pixels")
	ef.BoolVar(&c.Watch, "watch", c.Watch, "rebuild whenever a user style sheet changes")

	styles := &cobra.Command{
		Use:   "styles [element]",
		Short: "List the style sheets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.Element = args[0]
			}
			return cmd.Styles(c, cc.OutOrStdout())
		},
	}

	colormaps := &cobra.Command{
		Use:   "colormaps",
		Short: "List the colormaps",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return cmd.Colormaps(cc.OutOrStdout())
		},
	}

	root.AddCommand(example, styles, colormaps)
	return root
}
