package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lyrickana/convert"
	"lyrickana/ingest"
	"lyrickana/logger"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags optionFlags
	var dumpDir string
	var cleanDump bool
	var waHa, heE bool

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert lyrics to a hiragana reading",
		Long: "Convert reads lyrics from a file or stdin and prints their hiragana reading,\n" +
			"one output line per input line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			conv, err := ctx.ensureConverter(cmd)
			if err != nil {
				return err
			}

			opts := flags.apply(cmd, cfg.Options())
			req := ingest.NewRequest(input)
			res, err := conv.Run(cmd.Context(), req, opts)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("dump-dir") {
				dumpDir = cfg.Logging.DumpDir
			}
			if dumpDir != "" {
				if cleanDump {
					if err := logger.InitLogs(dumpDir); err != nil {
						return fmt.Errorf("prepare dump dir: %w", err)
					}
				}
				if err := logger.LogJSON(dumpDir, res.RequestID, res); err != nil {
					// the reading is still printed when the dump fails
					ctx.log.Warn("conversion dump failed", slog.String("dir", dumpDir), slog.Any("error", err))
				}
			}

			out := res.Output
			if waHa {
				out = convert.ToggleWaHa(out)
			}
			if heE {
				out = convert.ToggleHeE(out)
			}
			return writeOutput(cmd, out)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&dumpDir, "dump-dir", "", "Write the conversion breakdown as <request-id>.json into this directory")
	cmd.Flags().BoolVar(&cleanDump, "clean-dump", false, "Remove existing .json files from the dump directory first")
	cmd.Flags().BoolVar(&waHa, "wa", false, "Swap は and わ in the output")
	cmd.Flags().BoolVar(&heE, "he", false, "Swap へ and え in the output")
	return cmd
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the protected spans and units of every line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			conv, err := ctx.ensureConverter(cmd)
			if err != nil {
				return err
			}
			reports, err := conv.Inspect(cmd.Context(), input, flags.apply(cmd, cfg.Options()))
			if err != nil {
				return err
			}
			return renderReports(cmd.OutOrStdout(), reports)
		},
	}

	flags.register(cmd)
	return cmd
}
