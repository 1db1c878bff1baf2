package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lyrickana/toggle"
)

func newToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "toggle wa|he [file]",
		Short:       "Swap は/わ or へ/え in a reading",
		Long:        "Toggle swaps every は with わ (wa) or every へ with え (he). Applying it twice restores the input.",
		Args:        cobra.RangeArgs(1, 2),
		ValidArgs:   []string{"wa", "he"},
		Annotations: map[string]string{"skipConfig": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var swap func(string) string
			switch args[0] {
			case "wa":
				swap = toggle.WaHa
			case "he":
				swap = toggle.HeE
			default:
				return fmt.Errorf("unknown toggle %q (want wa or he)", args[0])
			}
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), swap(input))
			return err
		},
	}
}
