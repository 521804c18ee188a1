package main

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/jxskiss/pathkit"
)

type appendCmd struct {
	Path   string   `arg:"" help:"Resource path without a query."`
	Params []string `arg:"" optional:"" help:"Parameters as key=value, in order."`
}

func (cmd *appendCmd) Run(g *globalOptions) error {
	ps, err := parsePairs(cmd.Params)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, pathkit.AppendParams(cmd.Path, ps))
	return nil
}

type parseCmd struct {
	Source string `arg:"" help:"URL-like string, e.g. /contacts?foo=bar&color=red."`
	All    bool   `help:"Print every value of repeated keys."`
}

func (cmd *parseCmd) Run(g *globalOptions) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	d, err := cfg.QueryDecoder(g.logger)
	if err != nil {
		return err
	}

	if cmd.All {
		values, err := d.DecodeValues(cmd.Source)
		if err != nil {
			return err
		}
		ps := pathkit.Params{}
		for _, k := range sortedKeys(values) {
			for _, v := range values[k] {
				ps.Append(k, v)
			}
		}
		printParams(g.out, ps)
		return nil
	}

	ps, err := d.Decode(cmd.Source)
	if err != nil {
		return err
	}
	printParams(g.out, ps)
	return nil
}

type interpolateCmd struct {
	Template   string   `arg:"" help:"Template with (name) tokens, e.g. articles/(articleID)."`
	Properties []string `arg:"" optional:"" help:"Properties as key=value."`
}

func (cmd *interpolateCmd) Run(g *globalOptions) error {
	cfg, err := g.config()
	if err != nil {
		return err
	}
	ps, err := parsePairs(cmd.Properties)
	if err != nil {
		return err
	}
	out, err := cfg.Interpolator(g.logger).Interpolate(cmd.Template, ps)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, out)
	return nil
}

type matchCmd struct {
	Template string `arg:"" help:"Template with (name) tokens."`
	Path     string `arg:"" help:"Concrete path to match."`
}

func (cmd *matchCmd) Run(g *globalOptions) error {
	p, err := pathkit.CompilePattern(cmd.Template)
	if err != nil {
		return err
	}
	ps, ok := p.Match(cmd.Path)
	if !ok {
		return errors.Errorf("path %q does not match %q", cmd.Path, cmd.Template)
	}
	printParams(g.out, ps)
	return nil
}

type routeCmd struct {
	Path string `arg:"" help:"Concrete path to look up in the configured routes."`
}

func (cmd *routeCmd) Run(g *globalOptions) error {
	if g.Config == "" {
		return errors.New("--config is required")
	}
	cfg, err := g.config()
	if err != nil {
		return err
	}
	r, err := cfg.NewRouter(g.logger)
	if err != nil {
		return err
	}
	m, ok := r.Lookup(cmd.Path)
	if !ok {
		return errors.Wrap(pathkit.ErrNoRoute, cmd.Path)
	}
	fmt.Fprintf(g.out, "%s %s %s\n", m.Method, m.TypeName, m.Template)
	printParams(g.out, m.Params)
	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
