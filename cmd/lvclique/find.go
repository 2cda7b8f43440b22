// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvclique/clique"
)

const (
	strategyFlag    = "strategy"
	timeoutFlag     = "timeout"
	maximumFlag     = "maximum"
	outputFlag      = "output"
	inputFormatFlag = "input-format"
	verifyFlag      = "verify"
	metricsFlag     = "metrics"
)

// findConfig is the resolved configuration of one find invocation.
type findConfig struct {
	Strategy    clique.Strategy
	Timeout     time.Duration
	Maximum     bool
	Output      string
	InputFormat string
	Verify      bool
	Metrics     bool
	LogLevel    string
	LogFormat   string
}

// newFindCommand returns the "find" command.
func newFindCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "List the maximal cliques of a graph",
		Long: `Read a graph and print its maximal cliques.

The input is either an edge list, one "u v" pair or one isolated vertex per
line with '#' comments, or a YAML document with "vertices" and "edges" keys.
Without a file, or with "-", the graph is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readFindConfig(v)
			if err != nil {
				return err
			}
			name := stdinName
			if len(args) == 1 {
				name = args[0]
			}

			return runFind(cmd, name, cfg)
		},
	}

	flags := cmd.Flags()
	flags.String(strategyFlag, clique.StrategyPivot.String(), "branching strategy: plain|pivot|degeneracy")
	flags.Duration(timeoutFlag, 0, "search time budget, 0 for no limit")
	flags.Bool(maximumFlag, false, "print only the cliques of maximum size")
	flags.StringP(outputFlag, "o", "text", "output format: text|json|yaml")
	flags.String(inputFormatFlag, formatAuto, "input format: auto|edges|yaml")
	flags.Bool(verifyFlag, false, "check every reported clique for maximality")
	flags.Bool(metricsFlag, false, "dump search metrics to stderr after the run")
	for _, name := range []string{strategyFlag, timeoutFlag, maximumFlag, outputFlag, inputFormatFlag, verifyFlag, metricsFlag} {
		mustBindPFlag(v, name, flags.Lookup(name))
	}

	return cmd
}

func readFindConfig(v *viper.Viper) (findConfig, error) {
	strategy, err := clique.ParseStrategy(v.GetString(strategyFlag))
	if err != nil {
		return findConfig{}, err
	}
	cfg := findConfig{
		Strategy:    strategy,
		Timeout:     v.GetDuration(timeoutFlag),
		Maximum:     v.GetBool(maximumFlag),
		Output:      v.GetString(outputFlag),
		InputFormat: v.GetString(inputFormatFlag),
		Verify:      v.GetBool(verifyFlag),
		Metrics:     v.GetBool(metricsFlag),
		LogLevel:    v.GetString(logLevelFlag),
		LogFormat:   v.GetString(logFormatFlag),
	}
	if cfg.Timeout < 0 {
		return findConfig{}, fmt.Errorf("--%s %s: %w", timeoutFlag, cfg.Timeout, clique.ErrInvalidTimeout)
	}
	if _, ok := writers[cfg.Output]; !ok {
		return findConfig{}, fmt.Errorf("unknown output format: %s", cfg.Output)
	}

	return cfg, nil
}

func runFind(cmd *cobra.Command, name string, cfg findConfig) error {
	log, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := loadGraph(name, cfg.InputFormat, cmd.InOrStdin())
	if err != nil {
		return err
	}

	f, err := clique.NewFinder(g,
		clique.WithStrategy(cfg.Strategy),
		clique.WithDuration(cfg.Timeout),
		clique.WithLogger(log),
	)
	if err != nil {
		return err
	}
	if cfg.Metrics {
		defer func() { _ = dumpMetrics(cmd.ErrOrStderr()) }()
	}

	res, err := f.Result()
	if err != nil {
		return err
	}
	cliques := res.Cliques
	if cfg.Maximum {
		if cliques, err = f.MaximumCliques(); err != nil {
			return err
		}
	}

	if cfg.Verify {
		for _, c := range cliques {
			if !clique.IsMaximal(g, c) {
				return fmt.Errorf("verify: %s is not a maximal clique", c)
			}
		}
	}

	rep := newReport(g, res, cliques)

	return writers[cfg.Output](cmd.OutOrStdout(), rep)
}
