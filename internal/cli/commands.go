package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codalotl/hunkalign/internal/align"
	"github.com/codalotl/hunkalign/internal/config"
	"github.com/codalotl/hunkalign/internal/diff"
	"github.com/codalotl/hunkalign/internal/hunk"
	"github.com/codalotl/hunkalign/internal/simplelogger"
)

// runState holds persistent flag values and per-run resources shared by subcommands.
type runState struct {
	configPath string
	noColor    bool

	cfg config.Config
	log zerolog.Logger
}

// runWithConfig loads configuration and the logger before calling next, and logs the outcome.
func (s *runState) runWithConfig(event string, next func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(s.configPath)
		if err != nil {
			// Config (and so log.file) is unavailable; fall back to HUNKALIGN_LOG_FILE.
			logger, closer := simplelogger.FromEnv()
			logger.Error().Str("cmd", event).Err(err).Msg("load config")
			closer.Close()
			return err
		}
		logger, closer := simplelogger.Open(cfg.Log.File)
		defer closer.Close()

		s.cfg = cfg
		s.log = logger.With().Str("cmd", event).Logger()

		start := time.Now()
		s.log.Debug().Strs("args", args).Str("config", cfg.Source).Msg("start")

		err = next(cmd, args)
		if err != nil {
			s.log.Error().Err(err).Dur("elapsed", simplelogger.Since(start)).Msg("failed")
			return err
		}
		s.log.Info().Dur("elapsed", simplelogger.Since(start)).Msg("done")
		return nil
	}
}

func newRootCommand() *cobra.Command {
	s := &runState{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "hunkalign",
		Short:         "hunkalign aligns and merges line-numbered diff hunks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&s.configPath, "config", "", "path to a TOML config file (default: ./.hunkalign.toml, then ~/.hunkalign.toml)")
	root.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "disable colored text output")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	root.AddCommand(
		newHunksCommand(s),
		newShiftCommand(s),
		newMergeCommand(s),
		newConfigCommand(s),
		newVersionCommand(),
	)
	return root
}

func newHunksCommand(s *runState) *cobra.Command {
	var format string
	var noAlign, noMerge bool

	cmd := &cobra.Command{
		Use:   "hunks <old-file> <new-file>",
		Short: "Compute hunks between two files, align their boundaries, and merge adjacent hunks",
		Args:  usageArgs(cobra.ExactArgs(2)),
	}
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format (json|text)")
	cmd.Flags().BoolVar(&noAlign, "no-align", false, "do not grow hunks toward anchor lines")
	cmd.Flags().BoolVar(&noMerge, "no-merge", false, "do not merge adjacent hunks (overrides merge.enabled)")

	cmd.RunE = s.runWithConfig("hunks", func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(format); err != nil {
			return err
		}

		oldText, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		newText, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}

		hunks := diff.Compute(string(oldText), string(newText))
		computed := len(hunks)
		if !noAlign {
			hunks = align.ExpandAll(hunks, diff.Lines(string(newText)), s.cfg.AlignOptions())
		}
		if s.cfg.Merge.Enabled && !noMerge {
			hunks = hunk.MergeAdjacent(hunks)
		}

		s.log.Info().Int("computed", computed).Int("emitted", len(hunks)).Msg("hunks")
		return writeHunks(cmd.OutOrStdout(), format, s.noColor, hunks)
	})
	return cmd
}

func newShiftCommand(s *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "shift <up|down> [hunks.json|-]",
		Short:     "Shift each hunk in a JSON array one line up or down by absorbing its context line",
		ValidArgs: []string{"up", "down"},
		Args:      usageArgs(cobra.MatchAll(cobra.RangeArgs(1, 2), directionArg)),
	}

	cmd.RunE = s.runWithConfig("shift", func(cmd *cobra.Command, args []string) error {
		shift := hunk.ShiftUp
		if args[0] == "down" {
			shift = hunk.ShiftDown
		}

		hunks, err := readHunks(cmd.InOrStdin(), inputArg(args, 1))
		if err != nil {
			return err
		}
		for i, h := range hunks {
			if err := hunk.Validate(h); err != nil {
				return fmt.Errorf("hunk[%d]: %w", i, err)
			}
		}

		results := make([]shiftResult, 0, len(hunks))
		shifted := 0
		for _, h := range hunks {
			if got, ok := shift(h); ok {
				results = append(results, shiftResult{Shifted: true, Hunk: got})
				shifted++
				continue
			}
			results = append(results, shiftResult{Shifted: false, Hunk: h})
		}

		s.log.Info().Str("direction", args[0]).Int("hunks", len(hunks)).Int("shifted", shifted).Msg("shift")
		return writeJSON(cmd.OutOrStdout(), results)
	})
	return cmd
}

func directionArg(_ *cobra.Command, args []string) error {
	if args[0] != "up" && args[0] != "down" {
		return fmt.Errorf("direction must be \"up\" or \"down\" (got %q)", args[0])
	}
	return nil
}

func newMergeCommand(s *runState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "merge [hunks.json|-]",
		Short: "Merge adjacent hunks in an ordered JSON array of hunks",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
	}
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format (json|text)")

	cmd.RunE = s.runWithConfig("merge", func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(format); err != nil {
			return err
		}

		hunks, err := readHunks(cmd.InOrStdin(), inputArg(args, 0))
		if err != nil {
			return err
		}
		if err := hunk.ValidateSequence(hunks); err != nil {
			return err
		}

		merged := hunk.MergeAdjacent(hunks)
		s.log.Info().Int("in", len(hunks)).Int("out", len(merged)).Msg("merge")
		return writeHunks(cmd.OutOrStdout(), format, s.noColor, merged)
	})
	return cmd
}

func newConfigCommand(s *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		Args:  usageArgs(cobra.NoArgs),
	}
	cmd.RunE = s.runWithConfig("config", func(cmd *cobra.Command, _ []string) error {
		return writeJSON(cmd.OutOrStdout(), s.cfg)
	})
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hunkalign version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// inputArg returns args[i], or "-" (stdin) if absent.
func inputArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return "-"
}
