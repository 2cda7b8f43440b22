// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "LVCLIQUE"

	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// newRootCommand wires every subcommand to one viper instance that reads
// flags, LVCLIQUE_* environment variables and lvclique.yaml, in that order.
func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetConfigName("lvclique")
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, path := range []string{"$HOME/.lvclique", "."} {
		v.AddConfigPath(path)
	}

	root := &cobra.Command{
		Use:   "lvclique",
		Short: "Enumerate maximal cliques of undirected graphs",
		Long: `lvclique lists every maximal clique of an undirected simple graph using
Bron–Kerbosch with a plain, Tomita-pivot or degeneracy-ordered strategy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// A missing config file is fine; a broken one is not.
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return err
				}
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String(logLevelFlag, "none", "log level: none|debug|info|warn|error")
	flags.String(logFormatFlag, "text", "log format: text|json")
	mustBindPFlag(v, logLevelFlag, flags.Lookup(logLevelFlag))
	mustBindPFlag(v, logFormatFlag, flags.Lookup(logFormatFlag))

	root.AddCommand(newFindCommand(v))
	root.AddCommand(newVersionCommand())

	return root
}

// mustBindPFlag binds a config key to a pflag and panics on failure.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}
