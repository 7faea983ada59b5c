package cmd

import (
	"fmt"

	"github.com/DJBen/MusicTheory/chord"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect SYMBOL",
	Short: "Dumps the parsed structure of a chord symbol",
	Long:  `Dumps the parts, present parts and intervals a chord symbol parses into.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

var inspectConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func inspect(symbol string) error {
	c, err := chord.ParseChord(symbol)
	if err != nil {
		return err
	}
	t := c.Type()
	fmt.Printf("symbol: %v\n", symbol)
	fmt.Printf("root: %v\n", c.Root())
	fmt.Printf("inversion: %v\n", c.Inversion())
	fmt.Printf("parts: %s", inspectConfig.Sdump(t.Parts()))
	for _, part := range t.PresentParts() {
		fmt.Printf("part: %-20v interval: %v\n", part.String(), part.Interval().Notation())
	}
	return nil
}
