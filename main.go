package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatug/tugbrowse/pkg/browser"
	"github.com/datatug/tugbrowse/pkg/config"
	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/files/osfile"
	"github.com/datatug/tugbrowse/pkg/logging"
	"github.com/datatug/tugbrowse/pkg/opdir"
	"github.com/datatug/tugbrowse/pkg/profiling"
	"github.com/datatug/tugbrowse/pkg/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var osExit = os.Exit
var stderr io.Writer = os.Stderr
var newScreen = tcell.NewScreen
var newStore = func() files.Store {
	return osfile.NewStore()
}

type cliFlags struct {
	configPath   string
	operatingDir string
	noMouse      bool
	noHelp       bool
	logFile      string
	logLevel     string
	cpuProfile   string
	memProfile   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "tugbrowse: %v\n", err)
		osExit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:           "tugbrowse [path]",
		Short:         "Pick a file by browsing directories",
		Long:          `tugbrowse shows a full-screen directory listing and prints the path of the file you select.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			hint := settings.StartDir
			if len(args) == 1 {
				hint = args[0]
			}
			chosen, err := run(cmd.Context(), settings, hint, flags)
			if err != nil {
				return err
			}
			if chosen != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), chosen)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	f.StringVarP(&flags.operatingDir, "operating-dir", "o", "", "restrict browsing to this directory tree")
	f.BoolVar(&flags.noMouse, "no-mouse", false, "ignore mouse events")
	f.BoolVarP(&flags.noHelp, "no-help", "x", false, "hide the two shortcut lines")
	f.StringVar(&flags.logFile, "log-file", "", "append diagnostics to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&flags.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	f.StringVar(&flags.memProfile, "memprofile", "", "write memory profile to `file`")
	return cmd
}

// loadSettings reads the config file and applies the flags given on the command line.
func loadSettings(cmd *cobra.Command, flags cliFlags) (config.Settings, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return settings, err
	}
	changed := cmd.Flags().Changed
	if changed("operating-dir") {
		settings.OperatingDir = flags.operatingDir
	}
	if changed("no-mouse") {
		settings.Mouse = !flags.noMouse
	}
	if changed("no-help") {
		settings.NoHelp = flags.noHelp
	}
	if changed("log-file") {
		settings.LogFile = flags.logFile
	}
	if changed("log-level") {
		settings.LogLevel = flags.logLevel
	}
	return settings, nil
}

var run = func(ctx context.Context, settings config.Settings, hint string, flags cliFlags) (chosen string, err error) {
	logger, closer, err := logging.New(settings.LogFile, settings.LogLevel)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = closer.Close()
	}()

	if flags.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(flags.cpuProfile, logger)
		defer stopCPUProfiling()
	}
	if flags.memProfile != "" {
		defer profiling.DoMemProfiling(flags.memProfile, logger)()
	}

	options, err := browserOptions(settings, logger)
	if err != nil {
		return "", err
	}

	screen, err := newScreen()
	if err != nil {
		return "", err
	}
	if err = screen.Init(); err != nil {
		return "", err
	}
	defer screen.Fini()
	if settings.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents)
	}

	win := terminal.New(screen,
		terminal.WithNoHelp(settings.NoHelp),
		terminal.WithQuickBlank(settings.QuickBlank),
	)
	b := browser.New(win, newStore(), options...)
	chosen, err = b.BrowseFrom(ctx, hint)
	if err != nil {
		logger.WithError(err).Error("browse failed")
		return "", err
	}
	logger.WithField("path", chosen).Info("browse finished")
	return chosen, nil
}

func browserOptions(settings config.Settings, logger logrus.FieldLogger) ([]browser.Option, error) {
	options := []browser.Option{browser.WithLogger(logger)}
	if settings.OperatingDir != "" {
		restrictor, err := opdir.New(settings.OperatingDir)
		if err != nil {
			return nil, err
		}
		options = append(options, browser.WithRestrictor(restrictor))
	}
	if settings.DisableHelp {
		options = append(options, browser.WithHelp(nil))
	}
	hide, err := settings.HideMatcher()
	if err != nil {
		return nil, err
	}
	if hide != nil {
		options = append(options, browser.WithHide(hide))
	}
	return options, nil
}

// exitCode is 1 when nothing could be browsed and 2 for any other failure.
func exitCode(err error) int {
	if errors.Is(err, browser.ErrNoDirectory) {
		return 1
	}
	return 2
}
