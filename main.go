// Package main provides the nimbus command: a terminal screensaver that
// draws an ASCII glyph with live host telemetry in cycling rainbow colours.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nimbus/ascii"
	"nimbus/config"
	"nimbus/errors"
	"nimbus/logger"
	"nimbus/saver"
	"nimbus/screen"
	"nimbus/sysinfo"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"glyph":      "glyph",
	"strategy":   "strategy",
	"refresh":    "refresh",
	"frame":      "frame",
	"speed":      "speed",
	"min-width":  "min_width",
	"min-height": "min_height",
	"border":     "border",
	"log-file":   "log_file",
	"debug":      "debug",
}

// main is the entry point for nimbus. Errors are printed once, in the
// structured format, and exit with status 1; every other path exits 0.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		once       bool
	)

	root := &cobra.Command{
		Use:   "nimbus",
		Short: "Terminal screensaver with live host telemetry",
		Long: `nimbus draws an ASCII glyph centered in the terminal with uptime, load,
memory and IPv4 addresses beside it, cycling through rainbow colours
until interrupted with Ctrl-C.

Terminals smaller than the glyph are left untouched.

Examples:
  nimbus
  nimbus --glyph yinyang --border
  nimbus --strategy phase --speed 2
  nimbus --once`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, once)
		},
	}

	d := config.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.config/nimbus/config.yaml)")
	pf.String("glyph", d.Glyph, "glyph to draw: "+strings.Join(ascii.Names(), ", "))
	pf.String("strategy", string(d.Strategy), "tick strategy: full (refresh telemetry) or phase (colours only)")
	pf.Duration("refresh", d.Refresh, "telemetry refresh period for the full strategy")
	pf.Duration("frame", d.Frame, "colour animation period")
	pf.Float64("speed", d.Speed, "colour cycling speed")
	pf.Int("min-width", d.MinWidth, "smallest terminal width to draw in (0 = glyph width)")
	pf.Int("min-height", d.MinHeight, "smallest terminal height to draw in (0 = glyph height)")
	pf.Bool("border", d.Border, "draw a rounded box around the glyph")
	pf.String("log-file", d.LogFile, "append log messages to this file")
	pf.Bool("debug", d.Debug, "log debug messages")
	root.Flags().BoolVar(&once, "once", false, "print a single frame and exit")

	root.AddCommand(newConfigCmd(&configPath), newVersionCmd())
	return root
}

func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nimbus version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nimbus %s\n", version)
		},
	}
}

// loadConfig merges defaults, the config file, NIMBUS_* variables and the
// command's flags.
func loadConfig(cmd *cobra.Command, configPath string) (*config.Config, error) {
	v := config.NewViper()
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	path, err := config.Find(configPath)
	if err != nil {
		return nil, err
	}
	return config.Load(v, path)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// run draws on stdout until SIGINT or SIGTERM.
func run(ctx context.Context, cfg *config.Config, once bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Noop()
	if cfg.LogFile != "" {
		fileLog, closeLog, err := logger.OpenFile(cfg.LogFile, cfg.Debug)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot open log file "+cfg.LogFile,
				"Check the directory exists and is writable")
		}
		defer closeLog()
		log = fileLog
	}

	term, err := screen.New(os.Stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	if !once && !term.IsTerminal() {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"Use --once to print a single frame to a pipe or file")
	}

	s, err := saver.New(cfg, sysinfo.NewHostSource(), term, saver.WithLogger(log))
	if err != nil {
		return err
	}

	if once {
		return s.Once(ctx, os.Stdout)
	}

	log.Info("starting: glyph=%s strategy=%s", cfg.Glyph, cfg.Strategy)
	if err := s.Run(ctx); err != nil {
		log.Error("%s: %v", errors.CodeOf(err), err)
		return err
	}
	log.Info("stopped: %s", s.State())
	return nil
}
