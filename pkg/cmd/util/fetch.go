package util

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/lapcompare/pkg/acquire"
	"github.com/mpapenbr/lapcompare/pkg/config"
)

// AddFetchFlags registers the flags describing the acquisition script call
func AddFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&config.Python,
		"python",
		"python3",
		"python interpreter used to run the acquisition script")
	cmd.Flags().StringVar(&config.FetchScript,
		"script",
		"scripts/fetch.py",
		"acquisition script")
	cmd.Flags().IntVar(&config.Year,
		"year",
		2023,
		"season of the event")
	cmd.Flags().StringVar(&config.Event,
		"event",
		"Japan",
		"event name or country")
	cmd.Flags().StringVar(&config.Session,
		"session",
		"Q",
		"session identifier (Q, R, FP1, ...)")
	cmd.Flags().StringVar(&config.DataDir,
		"out-dir",
		"data",
		"directory holding the driver record files")
}

// FetchParams collects the acquisition parameters for two driver codes
func FetchParams(driver1, driver2 string) acquire.Params {
	return acquire.Params{
		Python:  config.Python,
		Script:  config.FetchScript,
		Year:    config.Year,
		Event:   config.Event,
		Session: config.Session,
		Drivers: [2]string{driver1, driver2},
		OutDir:  config.DataDir,
	}
}
