package main

import (
	"fmt"
	"os"

	"github.com/academe-go/academe"
	"github.com/academe-go/academe/classifier"
	"github.com/academe-go/academe/dataset"
	"github.com/academe-go/academe/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile    string
	jsonOutput bool
	noColor    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "academe",
	Short: "Academic email and domain classifier",
	Long: `academe tells whether an email address or domain belongs to an
academic institution by matching its hostname suffixes against a
dataset of institution domains, academic TLDs and stoplisted domains.

Examples:
  academe check lreilly@stanford.edu
  academe check harvard.edu --json
  academe bulk -f emails.txt -o results.csv
  academe dataset`,
	Version: academe.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// Execute adds all child commands to the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default $HOME/.academe.yaml)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to the dataset artifact (env ACADEME_DATASET)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Write results as JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress and summary output")

	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".academe")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("academe")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// newCLILogger returns the console logger used for dataset load warnings.
func newCLILogger() *zap.Logger {
	return logging.NewConsoleLogger(zapcore.WarnLevel, !noColor, false)
}

// loadClassifier loads the configured dataset artifact and wraps it in a
// classifier. A missing or unreadable artifact degrades to an empty dataset
// after a logged warning.
func loadClassifier(logger *zap.Logger) *classifier.Classifier {
	dc := dataset.Config{Path: viper.GetString("dataset")}
	return classifier.New(dc.Dataset(logger))
}
