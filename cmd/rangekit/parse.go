package main

import (
	"fmt"

	"github.com/lox/rangekit/notation"
)

// ParseCmd expands a notation string into its combos.
type ParseCmd struct {
	Range  string `arg:"" name:"range" help:"Range string, e.g. 'TT+,[50.0]AJo+[/50.0]'"`
	Format string `short:"f" help:"Input format: gtoplus or pio (default from config)"`
}

func (cmd *ParseCmd) Run(g *Globals) error {
	format := cmd.Format
	if format == "" {
		format = g.Config.Output.Format
	}

	combos, err := notation.ParseRangeString(cmd.Range, format)
	if err != nil {
		return err
	}
	g.Logger.Debug("Parsed range", "format", format, "combos", len(combos))

	for _, c := range combos {
		if _, err := fmt.Fprintf(g.Out, "%-4s %g\n", c.Combo, c.Weight); err != nil {
			return err
		}
	}
	return nil
}
