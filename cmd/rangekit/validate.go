package main

import (
	"fmt"

	"github.com/lox/rangekit/rangedoc"
)

// ValidateCmd checks range files and reports every failure.
type ValidateCmd struct {
	Files []string `arg:"" name:"file" help:"Range files to check"`
}

func (cmd *ValidateCmd) Run(g *Globals) error {
	failed := 0
	for _, path := range cmd.Files {
		doc, err := rangedoc.Load(path)
		if err != nil {
			g.Logger.Error("Invalid range", "file", path, "err", err)
			failed++
			continue
		}
		g.Logger.Info("Valid range", "file", path, "title", doc.Title, "combos", len(doc.Combos))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(cmd.Files))
	}
	return nil
}
