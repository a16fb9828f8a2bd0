// Package cpu implements the tape machine processor.
//
// The processor fetches 16-bit instruction words from a 4096 word
// instruction memory, decodes them into one of seven instructions, and
// executes them against a single bidirectionally growable tape. State is a
// program counter (Pc), an instruction register (Ir), an equality flag (Eq)
// set by compares and consumed by conditional branches, and the alphabet of
// symbols the program has declared valid.
//
// A run ends when an END instruction executes (halted or failed, per its
// halt bit), or when a compare finds an undeclared symbol under the head
// (failed). There is no step limit: callers that need one impose it
// themselves by driving Machine.Tick.
package cpu
