package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/willbeason/fractal-art/pkg/output"
	"github.com/willbeason/fractal-art/pkg/settings"
	"github.com/willbeason/fractal-art/pkg/transforms"
)

const (
	Width  = 1280
	Height = 720

	MaxIterations = 30

	viewHeight = 2.25
)

// defaults frames the whole Julia set in a widescreen image.
func defaults() settings.Settings {
	s := settings.Default()

	s.Width = Width
	s.Height = Height
	s.Variant = transforms.Julia{}.Name()
	s.MaxIterations = MaxIterations
	s.ViewHeight = viewHeight
	// Left empty so runCmd names the file after the time of the render.
	s.Out = ""

	return s
}

func outName(now time.Time) string {
	return fmt.Sprintf("out-%s.png", now.Format("20060102150405"))
}

func mainCmd() *cobra.Command {
	s := defaults()

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render a Julia set centered on the origin",
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

	if s.Out == "" {
		s.Out = outName(time.Now())
	}

	logger := s.Logger(cmd.ErrOrStderr())
	gg.SetLogger(logger)

	logger.Debug("julia constant", "c", complex(s.CReal, s.CImag))

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
