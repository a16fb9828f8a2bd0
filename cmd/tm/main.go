// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
	"golang.org/x/term"

	"github.com/ezrec/tmachine/cpu"
	"github.com/ezrec/tmachine/emulator"
	tmio "github.com/ezrec/tmachine/io"
)

// newLogger fans out to stderr, and optionally to a JSON file and the
// systemd journal.
func newLogger(verbose bool, logfile string, journal bool) (logger *slog.Logger, done func()) {
	done = func() {}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	stderr := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	handlers := []slog.Handler{stderr}

	if len(logfile) != 0 {
		ouf, err := os.Create(logfile)
		if err != nil {
			log.Fatalf("%v: %v", logfile, err)
		}
		done = func() { ouf.Close() }
		handlers = append(handlers, slog.NewJSONHandler(ouf, &slog.HandlerOptions{Level: level}))
	}

	if journal {
		handler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: toJournalKey,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			slog.New(stderr).Warn("systemd journal unavailable", "error", err)
		} else {
			handlers = append(handlers, handler)
		}
	}

	logger = slog.New(slogmulti.Fanout(handlers...))

	return
}

// toJournalKey maps a key to the journal field name alphabet.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(key))
}

// readCases collects every case line, failing on any scan error before a
// case is run.
func readCases(r io.Reader) (cases [][]byte, err error) {
	tape := &tmio.Tape{Input: r}
	cases = slices.Collect(tape.Receive())
	err = tape.Err()
	if err != nil {
		cases = nil
	}

	return
}

// writeReports renders each report, unless quiet, followed by the
// totals. The first write error is returned.
func writeReports(w io.Writer, reports []emulator.Report, programBits int, width int, quiet bool) (err error) {
	out := bufio.NewWriter(w)
	stats := emulator.Stats{ProgramBits: programBits}
	for _, report := range reports {
		if !quiet {
			err = report.Render(out, width)
			if err != nil {
				return
			}
		}
		stats.Add(report)
	}

	err = stats.Render(out)
	if err != nil {
		return
	}

	return out.Flush()
}

// renderWidth is the number of tape cells that fit on the terminal.
func renderWidth(out *os.File) int {
	fd := int(out.Fd())
	if !term.IsTerminal(fd) {
		return emulator.DEFAULT_WIDTH
	}

	cols, _, err := term.GetSize(fd)
	if err != nil || cols < 3 {
		return emulator.DEFAULT_WIDTH
	}

	return (cols - 1) / 2
}

func main() {
	var program string
	var input string
	var output string
	var verbose bool
	var quiet bool
	var limit string
	var jobs int
	var timeout time.Duration
	var fill string
	var width int
	var logfile string
	var journal bool

	flag.StringVar(&program, "p", "", ".bin program image to run")
	flag.StringVar(&input, "i", "-", ".tape cases, one per line")
	flag.StringVar(&output, "o", "-", "Report output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&quiet, "q", false, "Only report the totals")
	flag.StringVar(&limit, "l", "", "Step limit per case (expression, ie 'RAM_SIZE * 1000')")
	flag.IntVar(&jobs, "j", 1, "Cases run concurrently")
	flag.DurationVar(&timeout, "t", 0, "Time limit for all cases")
	flag.StringVar(&fill, "fill", "", "Symbol of cells added by tape growth (default blank)")
	flag.IntVar(&width, "w", 0, "Tape cells rendered (default fits the terminal)")
	flag.StringVar(&logfile, "log", "", "JSON log file")
	flag.BoolVar(&journal, "journal", false, "Log to the systemd journal")

	flag.Parse()

	// Accept 'tm prog.bin cases.tape'.
	for _, arg := range flag.Args() {
		switch {
		case strings.HasSuffix(arg, ".bin") && len(program) == 0:
			program = arg
		case strings.HasSuffix(arg, ".tape") && input == "-":
			input = arg
		default:
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
	}

	if len(program) == 0 {
		log.Fatalf("%v: a .bin program image is required", os.Args[0])
	}

	if len(fill) > 1 {
		log.Fatalf("%v: -fill must be a single symbol", os.Args[0])
	}

	logger, done := newLogger(verbose, logfile, journal)
	defer done()

	emu := emulator.NewEmulator()
	emu.Logger = logger
	emu.Jobs = jobs
	if len(fill) == 1 {
		emu.Fill = cpu.MakeCell(fill[0])
	}

	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	err = emu.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if len(limit) != 0 {
		emu.Limit, err = emu.EvalLimit(limit)
		if err != nil {
			log.Fatal(err)
		}
	}

	var cases [][]byte
	if input == "-" {
		cases, err = readCases(os.Stdin)
	} else {
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		cases, err = readCases(inf)
		inf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	if width == 0 {
		width = renderWidth(ouf)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reports, err := emu.Batch(ctx, slices.Values(cases))

	werr := writeReports(ouf, reports, emu.Program.Bits(), width, quiet)
	if werr != nil {
		log.Fatalf("%v: %v", output, werr)
	}

	if err != nil {
		log.Fatal(err)
	}
}
