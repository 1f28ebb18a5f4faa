package main

import (
	"context"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/willbeason/fractal-art/pkg/output"
	"github.com/willbeason/fractal-art/pkg/settings"
)

func mainCmd() *cobra.Command {
	s := settings.Default()

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render an escape-time fractal to an image file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, s)
		},
	}

	s.AddFlags(cmd.Flags())

	return cmd
}

func runCmd(cmd *cobra.Command, s settings.Settings) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := s.Logger(cmd.ErrOrStderr())
	gg.SetLogger(logger)

	img, err := s.Render(logger)
	if err != nil {
		return err
	}

	err = output.Save(s.Out, img)
	if err != nil {
		return err
	}

	logger.Info("wrote image", "path", s.Out)

	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
