package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/rangekit/internal/matrix"
	"github.com/lox/rangekit/internal/randutil"
	"github.com/lox/rangekit/rangedoc"
	"github.com/lox/rangekit/sampler"
)

// SampleCmd draws an action for every combo and prints the matrix.
type SampleCmd struct {
	File    string        `arg:"" name:"file" help:"Range file" type:"existingfile"`
	Seed    *int64        `help:"Deterministic RNG seed (default from config, 0 = time seeded)"`
	Watch   bool          `short:"w" help:"Redraw on an interval until interrupted"`
	Refresh time.Duration `help:"Redraw interval when watching (default from config)"`
	NoColor bool          `help:"Disable colour output"`
	Weights bool          `help:"Show inclusion percentages instead of a sample"`
}

func (cmd *SampleCmd) Run(g *Globals) error {
	doc, err := rangedoc.Load(cmd.File)
	if err != nil {
		return err
	}

	r := matrix.NewRenderer(g.Out, !cmd.NoColor)
	if cmd.Weights {
		_, err := fmt.Fprint(g.Out, r.Inclusion(doc), r.Legend(doc.Actions), "\n")
		return err
	}

	seed := g.Config.Sample.Seed
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}
	rng := randutil.NewUniform(seed)

	draw := func(s sampler.Sample) error {
		_, err := fmt.Fprint(g.Out, r.Sample(doc, s), r.Legend(doc.Actions), "\n")
		return err
	}

	if !cmd.Watch {
		return draw(doc.Sample(rng))
	}

	interval := cmd.Refresh
	if interval == 0 {
		interval = g.Config.RefreshInterval()
	}

	ctx, cancel := signalContext(g)
	defer cancel()
	return watch(ctx, g, quartz.NewReal(), interval, rng, doc, draw)
}

// watch redraws the sample every interval until ctx is cancelled.
func watch(ctx context.Context, g *Globals, clock quartz.Clock, interval time.Duration, rng sampler.IntSource, doc *rangedoc.Document, draw func(sampler.Sample) error) error {
	refresher := sampler.NewRefresher(clock, interval, rng)
	g.Logger.Info("Watching range", "title", doc.Title, "refresh", refresher.Interval())

	waiter, err := refresher.Start(ctx, doc.Combos, draw)
	if err != nil {
		return err
	}
	if err := waiter.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
