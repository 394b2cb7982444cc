package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/lox/rangekit/notation"
	"github.com/lox/rangekit/rangedoc"
)

// NewCmd writes a range with the default actions, empty or filled from a
// notation string.
type NewCmd struct {
	Title  string   `required:"" help:"Range title"`
	Author string   `required:"" help:"Range author"`
	Tag    []string `short:"t" help:"Tags to attach"`
	Range  string   `short:"r" help:"Notation string to fill the range from"`
	Format string   `short:"f" help:"Format of --range (default from config)"`
	Action string   `default:"Raise" help:"Action that receives the --range weights"`
	Out    string   `short:"o" help:"Output path (default derived from the title)"`
	Force  bool     `help:"Overwrite an existing file"`
}

func (cmd *NewCmd) Run(g *Globals) error {
	doc, err := rangedoc.New(nil, cmd.Title, cmd.Author, cmd.Tag...)
	if err != nil {
		return err
	}

	if cmd.Range != "" {
		if err := cmd.fill(g, doc); err != nil {
			return err
		}
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	return saveNew(g, doc, cmd.Out, cmd.Force)
}

func (cmd *NewCmd) fill(g *Globals, doc *rangedoc.Document) error {
	format := cmd.Format
	if format == "" {
		format = g.Config.Output.Format
	}
	combos, err := notation.ParseRangeString(cmd.Range, format)
	if err != nil {
		return err
	}

	action := slices.IndexFunc(doc.Actions, func(a rangedoc.Action) bool { return a.Name == cmd.Action })
	if action < 0 {
		return fmt.Errorf("unknown action %q", cmd.Action)
	}
	g.Logger.Debug("Filling range", "format", format, "combos", len(combos), "action", cmd.Action)
	return doc.ApplyRange(combos, action)
}

// saveNew writes doc to path, or to its derived file name, refusing to
// replace an existing file unless force is set.
func saveNew(g *Globals, doc *rangedoc.Document, path string, force bool) error {
	if path == "" {
		path = doc.FileName()
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := rangedoc.Save(path, doc); err != nil {
		return err
	}

	g.Logger.Info("Created range", "file", filepath.Clean(path), "id", doc.ID, "combos", len(doc.Combos))
	return nil
}
