package cmd

import (
	"fmt"

	"github.com/DJBen/MusicTheory/interval"
	"github.com/DJBen/MusicTheory/pitch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(transposeCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval FROM TO",
	Short: "Classifies the interval between two pitches",
	Long: `Classifies the interval between two pitches by degree and quality.

  musictheory interval C4 E♭4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := pitch.ParsePitch(args[0])
		if err != nil {
			return err
		}
		to, err := pitch.ParsePitch(args[1])
		if err != nil {
			return err
		}
		i := pitch.Distance(from, to)
		fmt.Printf("%v -> %v: %v (%v, %d semitones)\n", from, to, i.Notation(), i, i.Semitones)
		return nil
	},
}

var transposeDown bool

func init() {
	transposeCmd.Flags().BoolVarP(&transposeDown, "down", "d", false, "transpose downwards")
}

var transposeCmd = &cobra.Command{
	Use:   "transpose PITCH INTERVAL",
	Short: "Transposes a pitch by an interval",
	Long: `Transposes a pitch by an interval given in notation (M3, P5, m7, A4, d5)
or as a semitone count, spelling the result by degree.

  musictheory transpose C4 A4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := pitch.ParsePitch(args[0])
		if err != nil {
			return err
		}
		i, err := interval.ParseNotation(args[1])
		if err != nil {
			return err
		}
		res := p.Add(i)
		if transposeDown {
			res = p.Sub(i)
		}
		fmt.Printf("%v\n", res)
		return nil
	},
}
