package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/lapcompare/log"
	"github.com/mpapenbr/lapcompare/pkg/acquire"
	"github.com/mpapenbr/lapcompare/pkg/cmd/util"
	"github.com/mpapenbr/lapcompare/pkg/config"
	"github.com/mpapenbr/lapcompare/pkg/input"
	"github.com/mpapenbr/lapcompare/pkg/model"
	"github.com/mpapenbr/lapcompare/pkg/output"
	"github.com/mpapenbr/lapcompare/pkg/render/compose"
	"github.com/mpapenbr/lapcompare/pkg/render/label"
)

var ErrNoDrivers = errors.New("either two driver codes or --driver1 and --driver2 are required")

var (
	appConfig  config.Config // holds processed config values
	frameTime  time.Duration
	tailFrames int
)

//nolint:funlen // by design
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [driver1 driver2]",
		Short: "renders the lap comparison animation",
		Long: `Renders the fastest laps of two drivers side by side.

The records are either given by --driver1/--driver2 or by two driver codes which
are looked up as <out-dir>/<CODE>.json. With --refresh the acquisition script is
run first.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVar(&appConfig.Driver1File,
		"driver1",
		"",
		"record file of the first driver")
	cmd.Flags().StringVar(&appConfig.Driver2File,
		"driver2",
		"",
		"record file of the second driver")
	cmd.Flags().StringVarP(&appConfig.Output,
		"output",
		"o",
		"comparison.gif",
		"output file (gif) or directory (png)")
	cmd.Flags().StringVar(&appConfig.Format,
		"format",
		output.FormatGIF,
		"output format (gif, png)")
	cmd.Flags().BoolVar(&appConfig.Dither,
		"dither",
		false,
		"use Floyd-Steinberg dithering for gif frames")
	cmd.Flags().BoolVar(&appConfig.Refresh,
		"refresh",
		false,
		"run the acquisition script before rendering")
	cmd.Flags().StringVar(&config.LayoutFile,
		"layout",
		"",
		"yaml file with layout overrides")
	cmd.Flags().DurationVar(&frameTime,
		"frame-time",
		0,
		"display duration of a frame (0: use layout)")
	cmd.Flags().IntVar(&tailFrames,
		"tail-frames",
		-1,
		"frames showing the final state (-1: use layout)")
	cmd.Flags().StringVar(&config.FontRegular,
		"font-regular",
		"",
		"TTF/OTF file for regular labels (default: embedded Go font)")
	cmd.Flags().StringVar(&config.FontBold,
		"font-bold",
		"",
		"TTF/OTF file for bold labels (default: embedded Go font)")
	util.AddFetchFlags(cmd)
	return cmd
}

//nolint:cyclop // by design
func render(ctx context.Context, args []string) error {
	logger := log.Default().Named("render").
		WithFields(log.String("run", uuid.New().String()))

	files, err := recordFiles(ctx, args, logger)
	if err != nil {
		return err
	}

	layout, err := config.LoadLayout(config.LayoutFile)
	if err != nil {
		return err
	}
	if frameTime > 0 {
		layout.FrameTime = frameTime
	}
	if tailFrames >= 0 {
		layout.TailFrames = tailFrames
	}
	if err = layout.Validate(); err != nil {
		return err
	}

	var records [2]*model.DriverRecord
	for i, f := range files {
		if records[i], err = input.ReadFile(f); err != nil {
			return err
		}
	}

	ts, err := newTypesetter()
	if err != nil {
		return err
	}
	defer ts.Close()

	c, err := compose.NewCompositor(layout, ts, records[0], records[1],
		compose.WithLogger(logger.Named("compose")))
	if err != nil {
		return err
	}
	anim := compose.NewAnimation(c, compose.WithAnimationLogger(logger.Named("animation")))

	res := c.Resolution()
	sink, err := output.Open(appConfig.Format, appConfig.Output,
		output.WithDither(appConfig.Dither),
		output.WithPaletteColors(
			layout.Background.RGBA(),
			res.Metas[0].TeamColor,
			res.Metas[1].TeamColor,
			color.White),
		output.WithGIFLogger(logger.Named("gif")))
	if err != nil {
		return err
	}
	if err := anim.Run(sink); err != nil {
		_ = sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("write %s: %w", appConfig.Output, err)
	}
	logger.Info("animation written",
		log.String("output", appConfig.Output),
		log.Int("frames", anim.TotalFrames()))
	return nil
}

func recordFiles(ctx context.Context, args []string, logger *log.Logger) ([2]string, error) {
	switch {
	case len(args) == 2:
		params := util.FetchParams(args[0], args[1])
		if !appConfig.Refresh {
			return params.RecordFiles(), nil
		}
		return acquire.NewFetcher(acquire.WithLogger(logger.Named("acquire"))).
			Fetch(ctx, params)
	case appConfig.Driver1File != "" && appConfig.Driver2File != "":
		return [2]string{appConfig.Driver1File, appConfig.Driver2File}, nil
	default:
		return [2]string{}, ErrNoDrivers
	}
}

func newTypesetter() (*label.GoText, error) {
	var opts []label.Option
	for _, f := range []struct {
		file   string
		weight label.Weight
	}{
		{config.FontRegular, label.Regular},
		{config.FontBold, label.Bold},
	} {
		if f.file == "" {
			continue
		}
		data, err := os.ReadFile(f.file)
		if err != nil {
			return nil, err
		}
		opts = append(opts, label.WithFontData(f.weight, data))
	}
	return label.NewTypesetter(opts...)
}
