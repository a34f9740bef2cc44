package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jgriffin/aoc"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		opts       aoc.Options
		configPath string
		debug      bool
	)
	cmd := &cobra.Command{
		Use:          "aoc2023",
		Short:        "Run Advent of Code 2023 solutions",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := aoc.LoadConfig(configPath)
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			opts.Config = cfg
			opts.Out = cmd.OutOrStdout()
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			_, err = aoc.Run(cmd.Context(), source, &solver{}, opts)
			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.Day, "day", "d", 0, "day to run (default every day)")
	f.StringVarP(&opts.Part, "part", "p", "", "part to run (default every part)")
	f.BoolVar(&opts.OnlySample, "sample", false, "only run the samples")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "skip the samples")
	f.BoolVar(&debug, "debug", false, "log at debug level")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	cmd.PersistentFlags().StringVar(&configPath, "config", aoc.DefaultConfigPath(), "config file")

	cmd.AddCommand(newListCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days, err := aoc.Days(source, &solver{})
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Day", "Parts", "Samples"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			for _, d := range days {
				table.Append([]string{
					strconv.Itoa(d.Day),
					strings.Join(d.Parts, ","),
					fmt.Sprintf("%d/%d", d.Samples, len(d.Parts)),
				})
			}
			table.Render()
			return nil
		},
	}
}
