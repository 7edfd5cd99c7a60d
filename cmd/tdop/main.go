package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/tdop/config"
	"github.com/dhamidi/tdop/lang"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// app carries the settings resolved by the root command.
type app struct {
	configPath string
	verbose    int
	logFile    string
	config     *config.Config
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "tdop",
		Short:         "Translate indentation-structured programs into brace syntax",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")
	flags.StringVar(&a.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newGrammarCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = a.verbose
	}
	if cmd.Flags().Changed("log") {
		cfg.Log.File = a.logFile
	}
	a.config = cfg

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
	return nil
}

func (a *app) langOptions(file string) []lang.Option {
	return []lang.Option{
		lang.WithFile(file),
		lang.WithTimeout(a.config.Parser.Timeout.Duration),
		lang.WithBuffer(a.config.Parser.Buffer),
		lang.WithIndent(a.config.Render.Indent),
	}
}
