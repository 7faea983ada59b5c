package cmd

import (
	"fmt"
	"strings"

	"github.com/DJBen/MusicTheory/chord"
	"github.com/DJBen/MusicTheory/constants"
	"github.com/DJBen/MusicTheory/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	parseOctave      int
	parseInversions  bool
	parseProgression bool
)

func init() {
	parseCmd.Flags().IntVarP(&parseOctave, "octave", "o", constants.GetDefaultOctave(), "octave of the chord root")
	parseCmd.Flags().BoolVarP(&parseInversions, "inversions", "i", false, "also list every inversion")
	parseCmd.Flags().BoolVarP(&parseProgression, "progression", "p", false, "treat the arguments as one progression")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse SYMBOL...",
	Short: "Parses chord symbols",
	Long: `Parses chord symbols and prints their notation, description and pitches.

  musictheory parse Cm7 "F#m7(b5)" "E♭9(sus4)(no5)(add6)" C/E`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		octave := util.Clamp(parseOctave, constants.MinOctave, constants.MaxOctave)
		if octave != parseOctave {
			log.WithFields(log.Fields{
				"requested": parseOctave,
				"used":      octave,
			}).Warn("octave out of range")
		}
		if parseProgression {
			return printProgression(strings.Join(args, " "))
		}
		for _, symbol := range args {
			if err := printChord(symbol, octave); err != nil {
				return err
			}
		}
		return nil
	},
}

func printChord(symbol string, octave int) error {
	logger := log.WithFields(log.Fields{
		"function": "printChord",
		"symbol":   symbol,
	})
	c, err := chord.ParseChord(symbol)
	if err != nil {
		return err
	}
	logger.Debugf("parsed as %s", c.Type().Description())

	fmt.Printf("%v\n", c.Notation())
	fmt.Printf("  description: %v\n", c.Description())
	fmt.Printf("  intervals:   %v\n", c.Intervals())
	fmt.Printf("  pitches:     %v\n", c.Pitches(octave))
	if parseInversions {
		for _, inv := range c.Inversions() {
			fmt.Printf("  %-12v %v\n", inv.Notation(), inv.Pitches(octave))
		}
	}
	return nil
}

func printProgression(s string) error {
	p, err := chord.ParseProgression(s)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", p)
	for _, c := range p {
		fmt.Printf("  %-12v %v\n", c.Notation(), c.Keys())
	}
	return nil
}
