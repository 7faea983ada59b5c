package cmd

import (
	"fmt"
	"regexp"

	"github.com/DJBen/MusicTheory/chord"
	"github.com/DJBen/MusicTheory/interval"
	"github.com/DJBen/MusicTheory/util"
	"github.com/spf13/cobra"
)

var reportFilter string

func init() {
	reportCmd.Flags().StringVarP(&reportFilter, "filter", "f", "", "only count chord types whose notation matches this regexp")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports on every enumerable chord type",
	Long: `Enumerates every combination of chord parts and reports how many distinct
sounds and notations they produce, and how many survive a round trip
through their intervals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := regexp.Compile(reportFilter)
		if err != nil {
			return err
		}
		printReport(analyzeChordTypes(chord.All(), r))
		return nil
	},
}

type chordTypesReport struct {
	numTypes      int
	numNotations  int
	numSounds     int
	numRoundTrips int
	byToneCount   map[int]int
	// notations shared by more than one chord type
	collisions map[string]int
}

func semitonesOf(i interval.Interval) int {
	return i.Semitones
}

func analyzeChordTypes(types []chord.ChordType, filter *regexp.Regexp) chordTypesReport {
	report := chordTypesReport{
		byToneCount: make(map[int]int),
		collisions:  make(map[string]int),
	}
	notations := make(map[string]int)
	sounds := make(map[string]bool)

	for _, t := range types {
		notation := t.Notation()
		if !filter.MatchString(notation) {
			continue
		}
		report.numTypes += 1
		intervals := t.Intervals()
		report.byToneCount[len(intervals)] += 1
		notations[notation] += 1
		sounds[fmt.Sprint(util.Map(intervals, semitonesOf))] = true

		back, err := chord.FromIntervals(intervals)
		if err == nil && back.Equal(t) {
			report.numRoundTrips += 1
		}
	}

	for notation, n := range notations {
		if n > 1 {
			report.collisions[notation] = n
		}
	}
	report.numNotations = len(notations)
	report.numSounds = len(sounds)
	return report
}

func printReport(report chordTypesReport) {
	fmt.Printf("numTypes: %v\n", report.numTypes)
	fmt.Printf("numNotations: %v\n", report.numNotations)
	fmt.Printf("numSounds: %v\n", report.numSounds)
	fmt.Printf("numRoundTrips: %v\n", report.numRoundTrips)

	counts := make([]int, 0, len(report.byToneCount))
	for _, tones := range util.GetSortedKeys(report.byToneCount) {
		fmt.Printf("  %v tones: %v\n", tones, report.byToneCount[tones])
		counts = append(counts, report.byToneCount[tones])
	}
	fmt.Printf("counted by tones: %v\n", util.Sum(counts))

	for _, notation := range util.GetSortedKeys(report.collisions) {
		fmt.Printf("  %q is shared by %v chord types\n", notation, report.collisions[notation])
	}
}
