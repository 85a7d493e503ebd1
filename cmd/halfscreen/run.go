package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"

	"github.com/1broseidon/halfscreen/internal/app"
	"github.com/1broseidon/halfscreen/internal/config"
	"github.com/1broseidon/halfscreen/internal/hotkeys"
	"github.com/1broseidon/halfscreen/internal/logging"
	"github.com/1broseidon/halfscreen/internal/platform"
	"github.com/1broseidon/halfscreen/internal/runtimepath"
	"github.com/1broseidon/halfscreen/internal/snapper"
	"github.com/1broseidon/halfscreen/internal/tray"
)

type runOptions struct {
	root   *rootOptions
	noTray bool
	detach bool
}

func (o *runOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noTray, "no-tray", false, "run without the status-bar menu")
	cmd.Flags().BoolVar(&o.detach, "detach", false, "run in the background")
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{root: root}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Listen for placement shortcuts (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, opts)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

func runApp(cmd *cobra.Command, opts *runOptions) error {
	res, err := config.LoadWithSources(opts.root.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := res.Config

	if opts.detach {
		pidFile, err := runtimepath.PidFile()
		if err != nil {
			return err
		}
		dctx := &daemon.Context{
			PidFileName: pidFile,
			PidFilePerm: 0600,
			LogFileName: cfg.LogFile,
			LogFilePerm: 0600,
			WorkDir:     "/",
			Umask:       027,
			Args:        os.Args,
		}
		child, err := dctx.Reborn()
		if errors.Is(err, daemon.ErrWouldBlock) {
			return fmt.Errorf("halfscreen is already running (lock %s)", pidFile)
		}
		if err != nil {
			return fmt.Errorf("failed to detach: %w", err)
		}
		if child != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "halfscreen running in the background (pid %d)\n", child.Pid)
			return nil
		}
		defer dctx.Release()
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	if res.File != "" {
		logger.Info("configuration loaded", "file", res.File)
	}

	backend, err := platform.New(platform.Options{
		Display:    cfg.Display,
		XAuthority: cfg.XAuthority,
	})
	if err != nil {
		return err
	}
	if c, ok := backend.(io.Closer); ok {
		defer c.Close()
	}

	listener, err := hotkeys.New(backend, logger)
	if err != nil {
		return err
	}
	placer := snapper.New(backend, snapper.Options{
		SkipUnchanged: cfg.SkipUnchanged,
		Logger:        logger,
	})

	var menu *tray.Menu
	a := app.New(backend, listener, placer, app.Options{
		StartEnabled: cfg.StartEnabled,
		PollInterval: cfg.PermissionPollInterval,
		Logger:       logger,
		OnEnabledChange: func(enabled bool) {
			if menu != nil {
				menu.SetEnabled(enabled)
			}
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.noTray {
		var runErr error
		runHeadless(func() { runErr = a.Run(ctx) })
		return runErr
	}

	menu = tray.New(a)
	return runWithMenu(ctx, a, menu)
}

type runner interface {
	Run(ctx context.Context) error
	Quit()
}

type menuLoop interface {
	Run(onReady func())
	Close()
}

// runWithMenu blocks on the menu's UI loop and runs the app once the loop
// is up, so an early app error still reaches a live loop to close. If the
// loop exits before it was ready, the app is started already quit.
func runWithMenu(ctx context.Context, a runner, menu menuLoop) error {
	errCh := make(chan error, 1)
	var once sync.Once
	start := func() {
		go func() {
			errCh <- a.Run(ctx)
			menu.Close()
		}()
	}
	menu.Run(func() { once.Do(start) })
	a.Quit()
	once.Do(start)
	return <-errCh
}
