package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binance-stream",
	Short: "Streaming client for Binance websocket market and user data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.SetLevel(viper.GetString("loglevel"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("loglevel", "info", "Log level (trace, debug, info, warn, error)")
	viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))
}
