package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/rangekit/rangedoc"
)

// ListCmd lists the range files in a directory, optionally filtered.
type ListCmd struct {
	Dir    string   `arg:"" name:"dir" help:"Directory of range files" type:"existingdir"`
	Tag    []string `short:"t" help:"Only ranges carrying every given tag"`
	Search string   `short:"s" help:"Only ranges whose title contains every word"`
	Tags   bool     `help:"Print the tags used by the matching ranges instead"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	ctx, cancel := signalContext(g)
	defer cancel()

	results, err := rangedoc.LoadDir(ctx, cmd.Dir, runtime.GOMAXPROCS(0))
	if err != nil {
		return err
	}

	var docs []*rangedoc.Document
	paths := map[*rangedoc.Document]string{}
	for _, r := range results {
		if r.Err != nil {
			g.Logger.Warn("Skipping range file", "file", r.Path, "err", r.Err)
			continue
		}
		docs = append(docs, r.Document)
		paths[r.Document] = r.Path
	}

	matches := rangedoc.Filter(docs, cmd.Tag, cmd.Search)
	g.Logger.Debug("Listed ranges", "dir", cmd.Dir, "loaded", len(docs), "matched", len(matches))
	if cmd.Tags {
		for _, tag := range rangedoc.AllTags(matches) {
			if _, err := fmt.Fprintln(g.Out, tag); err != nil {
				return err
			}
		}
		return nil
	}
	if len(matches) == 0 {
		_, err := fmt.Fprintln(g.Out, "no matching ranges")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "TITLE", "AUTHOR", "TAGS", "COMBOS")
	for _, d := range matches {
		t.Row(
			filepath.Base(paths[d]),
			d.Title,
			d.Author,
			strings.Join(d.Tags, ", "),
			fmt.Sprint(len(d.Combos)),
		)
	}
	_, err = fmt.Fprintln(g.Out, t.String())
	return err
}
