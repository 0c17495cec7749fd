package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duskfield/skysampler/internal/check"
	"github.com/duskfield/skysampler/internal/config"
	"github.com/duskfield/skysampler/internal/display"
	"github.com/duskfield/skysampler/internal/logging"
	"github.com/duskfield/skysampler/internal/pipeline"
)

// exitCode carries the outcome out of the command handlers. Handlers return
// an error only for configuration problems; operational failures are logged
// where they happen and surface here as a nonzero code.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "skysampler [path ...]",
	Short: "Extract sky colors from skybox screenshots",
	Long: `skysampler reads skybox screenshots named <orientation><hour> (e.g. E12.png),
samples a vertical color gradient and six fixed sky zones from each, and
writes a JSON analysis report plus a reduced engine export.

With no paths it scans the ./` + config.DefaultInputDir + ` directory. A single directory
argument scans that directory instead; multiple arguments are taken as
explicit image files.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalysis,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("output-dir", "o", ".", "directory for the JSON outputs")
	pf.String("env-file", "", "load SKYSAMPLER_* overrides from this file")
	pf.String("color", "auto", "colorize console output: auto, always, never")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.String("log-file", "", "also append logs to this file (rotated)")

	f := rootCmd.Flags()
	f.IntP("samples", "n", 10, "vertical gradient sample count")
	f.String("palette", "off", "accent palette extraction: off, dominant, kmeans")
	f.Int("palette-size", 5, "colors per accent palette")
	f.Bool("dry-run", false, "analyze images but write nothing")

	rootCmd.AddCommand(checkCmd, versionCmd)
}

// run executes the root command and maps the outcome to a process exit code.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "skysampler: %v\n", err)
		return 1
	}
	return exitCode
}

// loadConfig builds the effective configuration: defaults, then environment
// (optionally from --env-file), then explicit flags. Flags win.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.DefaultConfig()

	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnv(&cfg, envFile); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("samples") {
		cfg.GradientSamples, _ = flags.GetInt("samples")
	}
	if flags.Changed("palette") {
		v, _ := flags.GetString("palette")
		cfg.PaletteMode = config.PaletteMode(v)
	}
	if flags.Changed("palette-size") {
		cfg.PaletteSize, _ = flags.GetInt("palette-size")
	}
	if flags.Changed("dry-run") {
		cfg.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		cfg.ColorMode = config.ColorMode(v)
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if v, _ := flags.GetBool("verbose"); v {
		cfg.Verbose = true
	}

	if len(args) > 0 {
		paths := make([]string, len(args))
		for i, a := range args {
			paths[i] = config.NormalizeDirArg(a)
		}
		cfg.Paths = paths
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runAnalysis is the root RunE: prepare the environment, then hand off to
// the pipeline.
func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	log := logging.NewLogger(&cfg)
	defer log.Sync()

	display.PrintBanner()
	log.Infof("=== skysampler v%s (%s) ===", version, commit)

	outDir, err := config.PrepareOutputDir(cfg.OutputDir)
	if err != nil {
		log.Errorf("Cannot prepare output directory: %v", err)
		exitCode = 1
		return nil
	}
	cfg.OutputDir = outDir

	// Fail fast if a codec is broken or the output directory rejects writes.
	if err := check.Verify(&cfg); err != nil {
		log.Errorf("%v", err)
		exitCode = 1
		return nil
	}

	stats := pipeline.Run(&cfg, log)
	exitCode = stats.ExitCode()
	return nil
}
