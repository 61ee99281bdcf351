package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "socplan",
	Short: "A schedule-of-classes cache and weekly planner",
	Long: `socplan caches USC schedule-of-classes data per department and term,
resolves loosely written department and course names, and assembles
conflict-free weekly schedules from selected lecture sections.`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.socplan.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().String("term", "", "term to query, e.g. \"Fall 2025\" or \"20253\" (default: next term)")
	rootCmd.PersistentFlags().String("db-dir", ".", "directory for the on-disk response cache")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")

	// Bind flags to viper
	viper.BindPFlag("term", rootCmd.PersistentFlags().Lookup("term"))
	viper.BindPFlag("db_dir", rootCmd.PersistentFlags().Lookup("db-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory and current directory
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".socplan")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("SOCPLAN")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
