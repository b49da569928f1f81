// Package profile provides optional runtime profiling of puzzle solutions.
//
// Profiling is built on [github.com/pkg/profile] and is compiled in only
// when the "pprof" build tag is set:
//
//	go build -tags pprof .
//	./aoc --pprof-mode cpu solve 2015/04
//	go tool pprof -http=: ~/.cache/aoc/pprof/cpu.pprof
//
// Without the tag, [Modes] is empty and [Profiler.Start] returns a no-op.
//
// The supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. CPU and trace profiles carry noticeable overhead
// and distort timings of the brute-force solutions.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
