// SPDX-License-Identifier: MIT

// root.go initializes the CLI, the config parser and the logger.
package main

import (
	"os"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
)

var cfgFile string
var verbose bool

// rootCmd represents the base command when called without any sub-commands.
var rootCmd = &cobra.Command{
	Use:   "dipole",
	Short: "Exact kernel verification for truncated Koopman operators",
	Long: `dipole builds the truncated Koopman operator M_N of an accelerated
qx+1 map in the Mahler basis and computes the exact kernel of I - M_N.

Sub-commands:
  verify    dipole conjecture check (3x+1): dim ker(I - M_N) = 2
  control   positive control (5x+1): nullity spike at the known 5-cycle
  rigidity  2/3-rigidity boundary check for the alternating vector`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		jww.ERROR.Printf("dipole exiting with error: %s", err.Error())
		os.Exit(1)
	}
}

// init is the initialization function for Cobra which defines commands
// and flags. Each sub-command carries its own init; flags here are global.
func init() {
	cobra.OnInitialize(initConfig, initLog)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file with run defaults and expected digests (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose mode: row-level progress and debug logging")

	handleBindingError(viper.BindPFlag("verbose",
		rootCmd.PersistentFlags().Lookup("verbose")), "verbose")
}

func handleBindingError(err error, flag string) {
	if err != nil {
		jww.FATAL.Panicf("Error on binding flag %q: %+v", flag, err)
	}
}

// initConfig reads in the config file and matching ENV variables, if set.
// The config is optional: every run works from flags alone.
func initConfig() {
	viper.AutomaticEnv()
	if cfgFile == "" {
		return
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		jww.ERROR.Printf("Unable to read config file (%s): %s", cfgFile, err.Error())
		os.Exit(1)
	}
}

// initLog initializes logging thresholds from the verbose flag.
func initLog() {
	if viper.GetBool("verbose") {
		jww.SetStdoutThreshold(jww.LevelDebug)
	} else {
		jww.SetStdoutThreshold(jww.LevelWarn)
	}
}

// rowProgress returns a builder progress hook that logs every 50th row at
// INFO (the cadence long reference runs report at), or nil when not verbose.
func rowProgress(label string) func(completed, total int) {
	if !viper.GetBool("verbose") {
		return nil
	}

	return func(completed, total int) {
		if completed%50 == 0 || completed == total {
			jww.INFO.Printf("%s: row %d/%d", label, completed, total)
		}
	}
}
