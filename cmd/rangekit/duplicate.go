package main

import (
	"path/filepath"
	"strings"

	"github.com/lox/rangekit/rangedoc"
)

// DuplicateCmd copies a range file under a fresh ID.
type DuplicateCmd struct {
	File  string `arg:"" name:"file" help:"Range file to copy" type:"existingfile"`
	Title string `help:"Title for the copy (default keeps the original)"`
	Out   string `short:"o" help:"Output path (default FILE-copy with the same extension)"`
	Force bool   `help:"Overwrite an existing file"`
}

func (cmd *DuplicateCmd) Run(g *Globals) error {
	doc, err := rangedoc.Load(cmd.File)
	if err != nil {
		return err
	}

	dup, err := doc.Duplicate(nil)
	if err != nil {
		return err
	}
	if cmd.Title != "" {
		dup.Title = cmd.Title
		if err := dup.Validate(); err != nil {
			return err
		}
	}

	out := cmd.Out
	if out == "" {
		out = copyPath(cmd.File)
	}
	return saveNew(g, dup, out, cmd.Force)
}

// copyPath turns "ranges/utg.range" into "ranges/utg-copy.range".
func copyPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-copy" + ext
}
