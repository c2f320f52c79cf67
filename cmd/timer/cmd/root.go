package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/NoNaeAbC/timer/pkg/timer"
)

var (
	cfgFile      string
	outputFormat string
	strictChecks bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "timer",
	Short: "In-process event timer demonstrations",
	Long: `timer exercises the measurement series engine: it records sequences
of named monotonic timestamps and reports elapsed times between
consecutive events and since initialization in human-readable units.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.timer/config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "output format: plain, table or yaml (default from config or plain)")
	rootCmd.PersistentFlags().BoolVar(&strictChecks, "strict", false, "enable usage validation on the timers")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".timer/config" (without extension)
		viper.AddConfigPath(filepath.Join(home, ".timer"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("output", "TIMER_OUTPUT")
	viper.BindEnv("strict", "TIMER_STRICT")

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("output") != "" && outputFormat == "" {
			outputFormat = viper.GetString("output")
		}
		if viper.GetBool("strict") {
			strictChecks = true
		}
	}

	// Check environment variables if not set from config
	if outputFormat == "" && viper.GetString("output") != "" {
		outputFormat = viper.GetString("output")
	}

	// Set default if still empty
	if outputFormat == "" {
		outputFormat = "plain"
	}
}

// timerOptions returns the construction options implied by the global flags.
func timerOptions() []timer.Option {
	var opts []timer.Option
	if strictChecks {
		opts = append(opts, timer.WithStrictChecks())
	}
	return opts
}
