// Command randomforest predicts movie ratings with one randomized decision
// forest per user.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Motwg/RandomForest/config"
	"github.com/Motwg/RandomForest/pkg/log"
)

type rootCmdConfig struct {
	configPath string
	logLevel   string
	logFile    string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:          "randomforest",
		Short:        "randomforest predicts ratings with randomized decision forests",
		Long:         `Grow one forest of randomized decision trees per user from their past ratings and predict the ratings of their pending tasks.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&(config.configPath), "config", "c", "", "path to a YAML configuration file (defaults to built-in settings)")
	rootCmd.PersistentFlags().StringVar(&(config.logLevel), "log-level", "", "log level: debug, info, warn or error (overrides the configuration)")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", "", "write JSON logs to this rotating file (overrides the configuration)")
	rootCmd.AddCommand(versionCmd(), runCmd(config), treeCmd(config))
	return rootCmd
}

// load reads the configuration file, applies the logging overrides and
// installs the process-wide logger. The returned function flushes logs.
func (rc *rootCmdConfig) load() (*config.Config, func() error, error) {
	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return nil, nil, err
	}
	if rc.logLevel != "" {
		cfg.Log.Level = rc.logLevel
	}
	if rc.logFile != "" {
		cfg.Log.File = rc.logFile
	}
	closeLog, err := log.SetupLogger(cfg.LogOptions())
	if err != nil {
		return nil, nil, err
	}
	if rc.configPath != "" {
		log.GetLoggerWithName("cli").Debug("configuration loaded", log.ConfigPathKey, rc.configPath)
	}
	return cfg, closeLog, nil
}

// fail logs err and returns it so cobra reports it and exits non-zero.
func fail(err error) error {
	log.GetLoggerWithName("cli").Error("command failed", err)
	return err
}
