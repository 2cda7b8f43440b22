// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvclique/core"
)

// Input formats accepted by --input-format.
const (
	formatAuto  = "auto"
	formatEdges = "edges"
	formatYAML  = "yaml"
)

// stdinName selects standard input as the graph source.
const stdinName = "-"

var errBadInput = errors.New("bad graph input")

// graphFile is the YAML document shape:
//
//	vertices: [a, b, c]
//	edges:
//	  - [a, b]
//	  - [b, c]
type graphFile struct {
	Vertices []string   `yaml:"vertices"`
	Edges    [][]string `yaml:"edges"`
}

// resolveFormat maps "auto" to a concrete format from the file extension.
func resolveFormat(format, name string) (string, error) {
	switch format {
	case formatEdges, formatYAML:
		return format, nil
	case formatAuto, "":
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			return formatYAML, nil
		}
		return formatEdges, nil
	default:
		return "", fmt.Errorf("unknown input format: %s", format)
	}
}

// loadGraph reads the graph named by name ("-" for stdin) in the given format.
func loadGraph(name, format string, stdin io.Reader) (*core.Graph, error) {
	format, err := resolveFormat(format, name)
	if err != nil {
		return nil, err
	}

	r := stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	if format == formatYAML {
		return parseYAML(r)
	}

	return parseEdgeList(r)
}

// parseEdgeList reads one edge "u v" or one isolated vertex "v" per line.
// Blank lines and text after '#' are ignored. A repeated edge in either
// direction is kept once.
func parseEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case 2:
			if err := addUndirected(g, fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: want \"u v\" or \"v\", got %d fields: %w", line, len(fields), errBadInput)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// parseYAML decodes a graphFile document.
func parseYAML(r io.Reader) (*core.Graph, error) {
	var doc graphFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	g := core.NewGraph()
	for _, id := range doc.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", id, err)
		}
	}
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge #%d: want 2 endpoints, got %d: %w", i, len(e), errBadInput)
		}
		if err := addUndirected(g, e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return g, nil
}

func addUndirected(g *core.Graph, u, v string) error {
	if u == v {
		return fmt.Errorf("self-loop on %q: %w", u, core.ErrLoopNotAllowed)
	}
	if g.HasEdge(u, v) {
		return nil
	}
	_, err := g.AddEdge(u, v, 0)

	return err
}
