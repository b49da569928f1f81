// Package cli contains the command line interface for aoc.
//
// # Usage
//
//	aoc [flags] <command> [args]
//
// The solve command is the default, so the following are equivalent:
//
//	aoc 2015/01
//	aoc solve 2015/01
//
// Inputs are read from <input-dir>/<year>/<day>.txt unless --file is given.
// A file of "-" reads stdin:
//
//	aoc solve 2016/19 -f - <<< 5
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (for example ~/.config/aoc). Keys are long flag
// names; YAML mappings may nest on hyphens:
//
//	input-dir: ~/src/aoc/input
//	log:
//	  level: debug
//	  pretty: false
//
// The init command writes the current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Style text output on a terminal
//
// Logs are written to stderr. Answers and dumps are written to stdout.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//		go build -tags pprof -o aoc .
//
//	  - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//	    heap, mem, mutex, thread, trace)
//	  - --pprof-dir: Set profile output directory (default ~/.cache/aoc/pprof)
package cli
