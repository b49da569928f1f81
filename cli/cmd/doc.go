// Package cmd implements the aoc subcommands.
//
// Commands are kong command structs with a Run(context.Context) error
// method. The root command stores the parsed [kong.Context] and the input
// directory in the context with [WithContext] and [WithInputDir].
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the YAML configuration file written by [Init].
const ConfigIdentifier = "config"

// CacheIdentifier is the kong variable identifier containing the path to
// the cache directory used for transient files.
const CacheIdentifier = "cache"
