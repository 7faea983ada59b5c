package cmd

import (
	"github.com/DJBen/MusicTheory/constants"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "musictheory",
	Short: "Chord symbols, intervals and pitches",
	Long: `musictheory parses chord symbols such as "F#m7(b5)(add9)" into their
parts, spells their pitches and inversions, and classifies intervals.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "logrus level: debug, info, warn, error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
