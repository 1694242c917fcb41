package main

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tanema/minire/src/conf"
	"github.com/tanema/minire/src/llog"
	"github.com/tanema/minire/src/pattern"
	"github.com/tanema/minire/src/repl"
)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfgFile   string
	logLevel  string
	colorMode string

	cfg     conf.Config
	logger  *zap.Logger
	colored bool
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, logger: zap.NewNop()}
}

func (a *app) execute(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "minire",
		Short:             "minire - a tiny pattern matcher with search, match and findall",
		Version:           conf.VERSION,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isTerminal(a.in) {
				return a.runREPL()
			}
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+conf.CONFIGFILE+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "diagnostics level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "", "highlight matches: auto, always or never")

	root.AddCommand(a.searchCmd())
	root.AddCommand(a.matchCmd())
	root.AddCommand(a.findAllCmd())
	root.AddCommand(a.rangeCmd())
	root.AddCommand(a.spanCmd())
	root.AddCommand(a.grepCmd())
	root.AddCommand(a.replCmd())
	return root
}

// setup loads the config, applies flag overrides and installs the logger.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := conf.Load(a.cfgFile)
	if err != nil {
		return usageErr(err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.colorMode != "" {
		cfg.Color = a.colorMode
	}
	if err := cfg.Validate(); err != nil {
		return usageErr(err)
	}
	logger, err := llog.NewWriter(cfg.Log, a.errOut)
	if err != nil {
		return usageErr(err)
	}
	a.cfg = cfg
	a.logger = logger
	pattern.SetLogger(logger)

	switch cfg.Color {
	case "always":
		a.colored = true
	case "never":
		a.colored = false
	default:
		a.colored = isTerminal(a.out)
	}
	setNoColor(!a.colored)
	logger.Debug("configured", zap.String("config", a.cfgFile), zap.String("color", cfg.Color), zap.Bool("colored", a.colored))
	return nil
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runREPL()
		},
	}
}

func (a *app) runREPL() error {
	_, _ = io.WriteString(a.errOut, conf.FullVersion()+"\nType help for commands, ctrl-c to quit or clear the current buffer.\n")
	return repl.Run(a.cfg.REPL, a.out, a.colored)
}

var colorMu sync.Mutex

// setNoColor sets the process wide fatih/color switch.
func setNoColor(off bool) {
	colorMu.Lock()
	defer colorMu.Unlock()
	if color.NoColor != off {
		color.NoColor = off
	}
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
