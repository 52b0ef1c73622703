package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/dailyread/internal/archive"
	"codeberg.org/snonux/dailyread/internal/cli"
	"codeberg.org/snonux/dailyread/internal/config"
	"codeberg.org/snonux/dailyread/internal/logging"
	"codeberg.org/snonux/dailyread/internal/models"
	"codeberg.org/snonux/dailyread/internal/processor"
	"codeberg.org/snonux/dailyread/internal/watch"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	cfg := cli.BuildConfig()
	logging.Setup(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	// Handle --archive flag
	if flags.Archive {
		archived, err := archive.ArchiveOutput(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive output: %w", err)
		}
		if archived != "" {
			fmt.Printf("Previous output archived to: %s\n", archived)
		}
	}

	// Create processor
	proc, err := processor.NewProcessor(cfg)
	if err != nil {
		return err
	}

	summary := proc.Run(ctx)
	summary.Print(os.Stdout)

	if !flags.Watch {
		if !summary.Complete() {
			return fmt.Errorf("not every document could be rendered, see the log")
		}
		return nil
	}

	fmt.Printf("\nWatching for changes, press Ctrl+C to stop\n")
	err = watch.Run(ctx, watchPaths(cfg), watch.DefaultDebounce, func() {
		proc.Run(ctx).Print(os.Stdout)
	})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}

// watchPaths lists the inputs of a run. The output directory is never
// watched, or every render would trigger the next.
func watchPaths(cfg config.Config) []string {
	paths := []string{
		cfg.DataDir,
		cfg.LyricsDir(),
		filepath.Dir(cfg.KindleStylesheet),
		filepath.Dir(cfg.DesktopStylesheet),
		cfg.TemplateDir,
	}

	output, _ := filepath.Abs(cfg.OutputDir)
	seen := make(map[string]bool)
	var unique []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil || seen[abs] || abs == output {
			continue
		}
		seen[abs] = true
		unique = append(unique, p)
	}

	log.Debug().Strs("paths", unique).Msg("watch paths")
	return unique
}
