// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs tape machine programs over batches of tape cases.
//
// The emulator owns everything the processor leaves to its caller: loading
// the program image, building one machine per case, cutting off runs that
// exceed a step limit or the caller's context, and collecting the reports
// and statistics of a batch.
package emulator

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/tmachine/cpu"
	"github.com/ezrec/tmachine/internal"
	tmio "github.com/ezrec/tmachine/io"
)

// CHECK_INTERVAL is the number of ticks between context checks.
const CHECK_INTERVAL = 4096

// Emulator state. Program + run policy.
type Emulator struct {
	Logger  *slog.Logger // Logger for load, run and trace messages.
	Program *cpu.Program // Currently loaded program.

	Limit int      // Step limit per case; 0 is unlimited.
	Fill  cpu.Cell // Value of cells added by tape growth.
	Jobs  int      // Cases run concurrently by Batch; less than 1 is 1.
}

// Report is the outcome of a single case.
type Report struct {
	Case    int          // Case number, from 1.
	Machine *cpu.Machine // Final machine state.
	Err     error        // Set if the run was cut off before a terminal state.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Logger:  slog.New(slog.DiscardHandler),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(cpu.Defines(),
		maps.All(map[string]string{
			"PROGRAM_WORDS": fmt.Sprintf("%d", emu.Program.Size),
			"PROGRAM_BITS":  fmt.Sprintf("%d", emu.Program.Bits()),
		}),
	)
}

// Load reads a program image. On error, the current program is kept.
func (emu *Emulator) Load(r io.Reader) (err error) {
	rom := &tmio.Rom{Capacity: cpu.RAM_SIZE}
	_, err = rom.ReadFrom(r)
	if err != nil {
		return
	}

	words := make([]cpu.Word, len(rom.Data))
	for n, data := range rom.Data {
		words[n] = cpu.Word(data)
	}

	prog, err := cpu.NewProgram(words)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Logger.Info("program loaded", "words", prog.Size, "bits", prog.Bits())

	return
}

// Run runs the program against a single tape case.
// The report is always valid; err is set only when the run was cut off by
// the step limit or by ctx.
func (emu *Emulator) Run(ctx context.Context, index int, line []byte) (report Report, err error) {
	tape := cpu.NewTape(line)
	tape.Fill = emu.Fill

	m := cpu.NewMachine(emu.Program, tape)

	logger := emu.Logger.With("case", index)
	if logger.Enabled(ctx, slog.LevelDebug) {
		m.Logger = logger
	}

	report = Report{Case: index, Machine: m}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Case: index, Steps: m.Steps, Err: err}
			report.Err = err
			logger.Warn("run cut off", "steps", m.Steps, "error", err)
		} else {
			logger.Info("run done", "state", m.State, "cause", m.Cause, "steps", m.Steps, "moves", m.Moves)
		}
	}()

	for !m.State.Done() {
		if emu.Limit > 0 && m.Steps >= emu.Limit {
			err = ErrLimit
			return
		}
		if m.Steps%CHECK_INTERVAL == 0 {
			err = ctx.Err()
			if err != nil {
				return
			}
		}
		m.Tick()
	}

	return
}

// Batch runs every case, up to Jobs at a time, and returns the reports in
// case order. Cases cut off by the step limit are reported with their Err
// set; cancellation of ctx stops the batch and is returned.
func (emu *Emulator) Batch(ctx context.Context, cases iter.Seq[[]byte]) (reports []Report, err error) {
	lines := slices.Collect(cases)
	reports = make([]Report, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(emu.Jobs, 1))

	for n, line := range lines {
		g.Go(func() error {
			report, err := emu.Run(ctx, n+1, line)
			reports[n] = report
			if err != nil && ctx.Err() != nil {
				return err
			}
			return nil
		})
	}

	err = g.Wait()

	return
}
