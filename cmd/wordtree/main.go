package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pbanos/wordtree/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootCmdConfig struct {
	configFile string
	v          *viper.Viper
	log        *zap.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cliParser().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "wordtree",
		Short: "wordtree is a tool to grow decision trees classifying documents",
		Long: `A tool to grow binary decision trees that classify bag-of-words documents
from the words they contain, and test them against a labelled corpus`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.init()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&(config.configFile), "config", "", "path to a YAML config file with values for any of the flags")
	flags.BoolP("verbose", "v", false, "log progress details (same as --log-level debug)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("redis-prefix", "wordtree", "prefix for the keys of a corpus stored on redis")
	for _, name := range []string{"verbose", "log-level", "log-format", "redis-prefix"} {
		_ = config.v.BindPFlag(name, flags.Lookup(name))
	}
	rootCmd.AddCommand(versionCmd(), growCmd(config), importCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) init() error {
	if rcc.configFile != "" {
		rcc.v.SetConfigFile(rcc.configFile)
		if err := rcc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	rcc.v.SetEnvPrefix("WORDTREE")
	rcc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	rcc.v.AutomaticEnv()

	level := rcc.v.GetString("log-level")
	if rcc.v.GetBool("verbose") {
		level = "debug"
	}
	l, err := logger.New(level, rcc.v.GetString("log-format") == "json")
	if err != nil {
		return err
	}
	rcc.log = l
	return nil
}

// Context returns a context carrying the command's logger
func (rcc *rootCmdConfig) Context(ctx context.Context) context.Context {
	return logger.ContextWithLogger(ctx, rcc.log)
}
