package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	console  bool
)

var rootCmd = &cobra.Command{
	Use:   "orcconv",
	Short: "orcconv inspects the schema-evolution type-conversion layer",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if console {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		}
		if logLevel == "" {
			return nil
		}
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			log.Warn().Msgf("orcconv: not a valid log level: %s", logLevel)
			return nil
		}
		zerolog.SetGlobalLevel(lvl)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&console, "console", false, "write logs in human-readable console form")
	rootCmd.AddCommand(matrixCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("orcconv: fatal error")
	}
}
