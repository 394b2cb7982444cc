package main

import (
	"fmt"
	"strings"

	"github.com/lox/rangekit/poker"
)

// UniverseCmd prints every starting hand, one matrix row per line.
type UniverseCmd struct{}

func (cmd *UniverseCmd) Run(g *Globals) error {
	for row := range poker.NumRanks {
		labels := make([]string, poker.NumRanks)
		for col := range poker.NumRanks {
			labels[col] = poker.ComboAt(row, col).String()
		}
		if _, err := fmt.Fprintln(g.Out, strings.Join(labels, " ")); err != nil {
			return err
		}
	}
	return nil
}
