// SPDX-License-Identifier: EPL-2.0

// Command click2midi converts a metronome click track recording into a MIDI
// tempo map.
//
//	click2midi -i song-click.wav [-o song.mid] [-force-events] [-verbose]
//
// Reference click paths default to the CLICKTRACK_CLICK_* environment
// variables, then to the clicks/ directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/ik5/clicktrack"
	"github.com/ik5/clicktrack/click"
	"github.com/ik5/clicktrack/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

var (
	red   = color.New(color.FgRed, color.Bold)
	green = color.New(color.FgGreen)
	cyan  = color.New(color.FgCyan)
)

var errNoInput = errors.New("an input file is required (-i)")

type options struct {
	input, output string
	forceEvents   bool
	verbose       bool
	debug         bool
	progress      bool
	minSilence    float64
	bpmTolerance  float64
	templates     map[click.Division]string
}

func parseFlags(args []string, defaults config.Config, stderr io.Writer) (options, error) {
	opts := options{templates: make(map[click.Division]string)}

	fs := flag.NewFlagSet("click2midi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.input, "i", "", "click track recording (wav, aiff, mp3, ogg)")
	fs.StringVar(&opts.input, "input", "", "same as -i")
	fs.StringVar(&opts.output, "o", "", "output MIDI file (default: input with .mid extension)")
	fs.StringVar(&opts.output, "output", "", "same as -o")
	fs.BoolVar(&opts.forceEvents, "force-events", false, "emit a tempo for every click and a time signature for every bar")
	fs.BoolVar(&opts.verbose, "verbose", false, "log every tempo and time signature decision")
	fs.BoolVar(&opts.debug, "debug", false, "log pipeline details")
	fs.BoolVar(&opts.progress, "progress", true, "show a progress bar while classifying")
	fs.Float64Var(&opts.minSilence, "min-silence", defaults.MinSilenceSeconds, "seconds of silence that end a click")
	fs.Float64Var(&opts.bpmTolerance, "bpm-tolerance", defaults.BPMTolerance, "smallest tempo change that gets a new tempo event")

	bar := fs.String("click-bar", defaults.ClickBar, "bar-line reference click")
	q := fs.String("click-4th", defaults.Click4th, "quarter-note reference click")
	e := fs.String("click-8th", defaults.Click8th, "eighth-note reference click")
	s := fs.String("click-16th", defaults.Click16th, "sixteenth-note reference click")
	t := fs.String("click-32nd", defaults.Click32nd, "thirty-second-note reference click")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.input == "" {
		if fs.NArg() == 0 {
			return options{}, errNoInput
		}
		opts.input = fs.Arg(0)
	}

	opts.templates[click.Bar] = *bar
	opts.templates[click.Quarter] = *q
	opts.templates[click.Eighth] = *e
	opts.templates[click.Sixteenth] = *s
	opts.templates[click.ThirtySecond] = *t

	return opts, nil
}

func (o options) config(logger *logrus.Logger) clicktrack.Config {
	cfg := clicktrack.DefaultConfig()
	cfg.MinSilence = time.Duration(o.minSilence * float64(time.Second))
	cfg.BPMTolerance = o.bpmTolerance
	cfg.Verbose = o.verbose
	cfg.Logger = logger

	if o.forceEvents {
		cfg = cfg.Maximize()
	}

	return cfg
}

func newLogger(o options) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case o.debug:
		logger.SetLevel(logrus.DebugLevel)
	case o.verbose:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger
}

// progressBar feeds classification progress to an mpb bar created on the
// first report, once the click count is known.
type progressBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func (pb *progressBar) report(done, total int) {
	if pb.bar == nil {
		pb.p = mpb.New(mpb.WithWidth(64), mpb.WithOutput(os.Stderr))
		pb.bar = pb.p.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name("Classifying: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}
	pb.bar.SetCurrent(int64(done))
}

func (pb *progressBar) wait() {
	if pb.p == nil {
		return
	}
	if !pb.bar.Completed() {
		pb.bar.Abort(false)
	}
	pb.p.Wait()
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, config.Load(), stderr)
	if err != nil {
		return err
	}

	cfg := opts.config(newLogger(opts))

	var pb progressBar
	if opts.progress {
		cfg.Progress = pb.report
	}

	res, out, err := clicktrack.ConvertFile(clicktrack.Files{
		Input:     opts.input,
		Output:    opts.output,
		Templates: opts.templates,
	}, cfg)
	pb.wait()
	if err != nil {
		return err
	}

	printSummary(stdout, res, out)

	return nil
}

func printSummary(w io.Writer, res *clicktrack.Result, out string) {
	counts := make(map[click.Division]int)
	for _, c := range res.Clicks {
		counts[c.Division]++
	}

	tl := res.Timeline
	fmt.Fprintf(w, "%s %d clicks at %d Hz\n", cyan.Sprint("detected"), len(res.Clicks), res.SampleRate)
	for _, d := range click.Divisions {
		if counts[d] > 0 {
			fmt.Fprintf(w, "  %-5s %d\n", d, counts[d])
		}
	}
	fmt.Fprintf(w, "%s %d bars, %d tempo events, %d time signatures\n",
		cyan.Sprint("timeline"), tl.Bars, len(tl.Tempos()), len(tl.TimeSignatures()))
	fmt.Fprintf(w, "%s %s\n", green.Sprint("wrote"), out)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		red.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
