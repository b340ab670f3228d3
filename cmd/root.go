package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drills/internal/config"
	"drills/internal/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "drills",
	Short: "A toolbox of classic programming exercises",
	Long: `Drills bundles a few classic exercises into one command-line tool:
a memoized Fibonacci calculator, a text income summarizer, a log-file
statistics analyzer and an interactive contacts assistant bot.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.drills.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (error, warn, info, debug)")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".drills")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogging applies the log level from the flag, falling back to the
// project config file.
func setupLogging(cfg *config.Config) {
	logLevel := viper.GetString("log-level")
	if logLevel == "" && cfg != nil {
		logLevel = cfg.LogLevel
	}
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", "level", logLevel)
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", "error", err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the optional project-local drills.toml.
func loadConfig() *config.Config {
	cfg, err := config.Load(".")
	if err != nil {
		log.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}
	return cfg
}
