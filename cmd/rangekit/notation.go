package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/rangekit/internal/fileutil"
	"github.com/lox/rangekit/notation"
	"github.com/lox/rangekit/rangedoc"
)

const formatAll = "all"

// NotationCmd prints a range file as a solver notation string.
type NotationCmd struct {
	File      string `arg:"" name:"file" help:"Range file (.range, .json or .yaml)" type:"existingfile"`
	Format    string `short:"f" help:"Output format: gtoplus, pio or all (default from config)"`
	Precision *int   `short:"p" help:"Decimal places for percentages (default from config)"`
	Out       string `short:"o" help:"Write the notation to this file instead of stdout"`
}

func (cmd *NotationCmd) Run(g *Globals) error {
	doc, err := rangedoc.Load(cmd.File)
	if err != nil {
		return err
	}

	format := cmd.Format
	if format == "" {
		format = g.Config.Output.Format
	}
	precision := g.Config.PrecisionDigits()
	if cmd.Precision != nil {
		precision = *cmd.Precision
	}
	if precision < 0 {
		return fmt.Errorf("precision must not be negative: %d", precision)
	}

	weighted := doc.WeightedCombos(precision)
	g.Logger.Debug("Loaded range", "file", cmd.File, "title", doc.Title, "combos", len(weighted))

	var sb strings.Builder
	if format != formatAll {
		out, err := notation.CombosToRangeString(weighted, format)
		if err != nil {
			return err
		}
		sb.WriteString(out + "\n")
	} else {
		for _, id := range notation.FormatIDs() {
			f, err := notation.LookupFormat(id)
			if err != nil {
				return err
			}
			out, err := notation.CombosToRangeString(weighted, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, "%s: %s\n", f.Label, out)
		}
	}

	if cmd.Out != "" {
		if err := fileutil.WriteFileAtomic(cmd.Out, []byte(sb.String()), 0o644); err != nil {
			return err
		}
		g.Logger.Info("Wrote notation", "file", cmd.Out, "format", format)
		return nil
	}
	_, err = io.WriteString(g.Out, sb.String())
	return err
}
