package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/lapcompare/pkg/acquire"
	"github.com/mpapenbr/lapcompare/pkg/cmd/util"
)

func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch driver1 driver2",
		Short: "downloads the fastest laps of two drivers",
		Long: `Runs the acquisition script which stores one record file per driver
in the output directory. The drivers are given by their three letter codes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := acquire.NewFetcher().Fetch(cmd.Context(),
				util.FetchParams(args[0], args[1]))
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	util.AddFetchFlags(cmd)
	return cmd
}
