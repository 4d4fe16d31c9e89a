// Package cli implements the jpeg-forensics command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"greg-hacke/jpeg-forensics/config"
	"greg-hacke/jpeg-forensics/detect"
	"greg-hacke/jpeg-forensics/logging"
	"greg-hacke/jpeg-forensics/report"
)

// Version information - set at build time
var Version = "dev"

// Exit codes
const (
	ExitOK             = 0
	ExitInvalidInput   = 1
	ExitNotImplemented = 2
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "jpeg-forensics [flags] <file>",
		Short: "Digital image forensics for JPEG files",
		Long: `jpeg-forensics inspects the EXIF metadata of a JPEG image and reports
indicators that it may have been edited after capture: editing software,
modification dates, camera identity, GPS position and authorship.

Pixel-domain detectors (JPEG ghost, noise residue, ELA, CFA) are reserved
modes and report that they are not implemented.`,
		Args:          cobra.ExactArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, configPath, args[0])
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(NewTagsCommand())

	flags := rootCmd.Flags()
	var modeNames []string
	for _, mode := range detect.Modes {
		flags.BoolP(mode.String(), mode.Shorthand(), false, mode.Usage())
		modeNames = append(modeNames, mode.String())
	}
	rootCmd.MarkFlagsMutuallyExclusive(modeNames...)

	flags.IntP(config.FlagQuality, "q", 75, "resaved image quality (1-100)")
	flags.IntP(config.FlagBlockSize, "s", 8, "block size of the kernel mask")
	formats := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		formats[i] = string(f)
	}
	flags.String(config.FlagFormat, string(report.FormatText), "output format: "+strings.Join(formats, ", "))
	flags.Bool(config.FlagNoColor, false, "disable colored output")
	flags.Bool(config.FlagNoDump, false, "omit the raw metadata dump")
	flags.BoolP(config.FlagVerbose, "v", false, "verbose diagnostics on stderr")
	flags.StringVar(&configPath, config.FlagConfig, "", "config file (default ./jpeg-forensics.yaml)")

	return rootCmd
}

func run(cmd *cobra.Command, configPath, path string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := ValidateInput(path); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	mode := selectedMode(cmd)
	params := detect.Params{Quality: cfg.Detectors.Quality, BlockSize: cfg.Detectors.BlockSize}
	logger.Debug("dispatching", zap.Stringer("mode", mode), zap.String("file", path))

	outcome, err := detect.NewDispatcher(logger).Run(mode, path, params)
	if err != nil {
		return err
	}

	switch o := outcome.(type) {
	case detect.Completed:
		return report.Write(cmd.OutOrStdout(), o.Report, format, report.RenderOptions{
			NoColor: !cfg.Output.Color,
			NoDump:  !cfg.Output.Dump,
		})
	case detect.NotImplemented:
		return fmt.Errorf("%s: %w", o.Mode, ErrNotImplemented)
	default:
		return fmt.Errorf("unexpected outcome %T", outcome)
	}
}

// selectedMode returns the mode flag that was set, the metadata engine
// when none was.
func selectedMode(cmd *cobra.Command) detect.Mode {
	mode := detect.ModeEXIF
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if m, err := detect.ParseMode(f.Name); err == nil && f.Value.String() == "true" {
			mode = m
		}
	})
	return mode
}

// Execute runs the command line and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	noColor, _ := rootCmd.Flags().GetBool(config.FlagNoColor)
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if noColor {
			c.DisableColor()
		}
		return c
	}

	switch {
	case errors.Is(err, ErrNotImplemented):
		paint(color.FgYellow).Fprintln(stderr, err)
		return ExitNotImplemented
	case isInvalidInput(err):
		paint(color.FgRed, color.Bold).Fprintln(stderr, InvalidInputMessage)
		fmt.Fprintf(stderr, "  %v\n", err)
		return ExitInvalidInput
	default:
		paint(color.FgRed, color.Bold).Fprintf(stderr, "Error: %v\n", err)
		return ExitInvalidInput
	}
}
