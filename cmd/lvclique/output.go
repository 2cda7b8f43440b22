// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

// report is the serialized outcome of a find run.
type report struct {
	Strategy   string     `json:"strategy" yaml:"strategy"`
	Vertices   int        `json:"vertices" yaml:"vertices"`
	Edges      int        `json:"edges" yaml:"edges"`
	MaxSize    int        `json:"max_size" yaml:"max_size"`
	Count      int        `json:"count" yaml:"count"`
	Expansions uint64     `json:"expansions" yaml:"expansions"`
	Elapsed    string     `json:"elapsed" yaml:"elapsed"`
	Cliques    [][]string `json:"cliques" yaml:"cliques"`
}

func newReport(g *core.Graph, res clique.Result, cliques []clique.Clique) report {
	rep := report{
		Strategy:   res.Strategy.String(),
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		MaxSize:    res.MaxSize,
		Count:      len(cliques),
		Expansions: res.Expansions,
		Elapsed:    res.Elapsed.String(),
		Cliques:    make([][]string, len(cliques)),
	}
	for i, c := range cliques {
		rep.Cliques[i] = []string(c)
	}

	return rep
}

const metricPrefix = "lvclique_"

type reportWriter func(io.Writer, report) error

var writers = map[string]reportWriter{
	"text": writeText,
	"json": writeJSON,
	"yaml": writeYAML,
}

// writeText prints one clique per line followed by a summary line.
func writeText(w io.Writer, rep report) error {
	for _, c := range rep.Cliques {
		if _, err := fmt.Fprintln(w, clique.Clique(c)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "# %d cliques, max size %d, %d expansions, strategy %s, %s\n",
		rep.Count, rep.MaxSize, rep.Expansions, rep.Strategy, rep.Elapsed)

	return err
}

func writeJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

func writeYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}

	return enc.Close()
}

// dumpMetrics writes the lvclique_* families of the default registry in the
// Prometheus text exposition format.
func dumpMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
