/*
Command texicons turns icon fonts into LaTeX packages.

Usage:

   texicons [-config texicons.toml] [-trace Info] <command>

Commands:

   fetch       download fonts and codepoint tables listed in the icon-set index
   normalize   convert Iconify documents into intermediate documents
   generate    generate packages from the index and from intermediate documents
   publish     upload generated packages to object storage

Exit codes are 0 for success, 1 if the run was aborted, 2 for usage errors
and 3 if some icon sets failed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/texicons/backend/publish"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/config"
	"github.com/npillmayer/texicons/core/filter"
	"github.com/npillmayer/texicons/core/locate/resources"
	"github.com/npillmayer/texicons/engine/pipeline"
	"github.com/npillmayer/texicons/input/codepoints"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// tracer traces with key 'texicons.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("texicons.pipeline")
}

// Exit codes
const (
	exitOK     = 0
	exitFatal  = 1
	exitUsage  = 2
	exitFailed = 3
)

var traceKeys = []string{
	"texicons.extract", "texicons.variant", "texicons.synth", "texicons.svg",
	"texicons.pipeline", "texicons.input", "texicons.fonts", "texicons.resources",
	"texicons.config", "texicons.publish",
}

func main() {
	initDisplay(term.IsTerminal(int(os.Stdout.Fd())))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, afero.NewOsFs(), os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// We use pterm for moderately fancy output.
func initDisplay(styled bool) {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	if !styled {
		pterm.DisableStyling()
	}
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func usage(flags *flag.FlagSet) func() {
	return func() {
		out := flags.Output()
		fmt.Fprintf(out, "usage: texicons [flags] fetch|normalize|generate|publish\n")
		flags.PrintDefaults()
	}
}

// run executes one command and returns the exit code.
func run(ctx context.Context, fs afero.Fs, args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("texicons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = usage(flags)
	confFile := flags.String("config", config.DefaultFile, "configuration file")
	tlevel := flags.String("trace", "", "Trace level [Debug|Info|Error], overrides configuration")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	command := flags.Arg(0)
	switch command {
	case "fetch", "normalize", "generate", "publish":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		flags.Usage()
		return exitUsage
	}
	if err := config.LoadEnvFile(fs, ".env"); err != nil {
		return fail(stderr, err)
	}
	conf, err := config.Load(fs, *confFile)
	if err != nil {
		return fail(stderr, err)
	}
	if *tlevel != "" {
		conf.Trace = *tlevel
	}
	if err = setupTracing(conf.Trace); err != nil {
		fmt.Fprintf(stderr, "error configuring tracing: %v\n", err)
		return exitFatal
	}
	tracer().Infof("texicons %s, trace level %s", command, conf.Trace)
	lists, err := config.LoadLists(fs, conf)
	if err != nil {
		return fail(stderr, err)
	}
	switch command {
	case "fetch":
		err = fetch(ctx, fs, conf, lists)
		return exitCode(nil, err, stderr)
	case "normalize":
		date, err := conf.PackageDate(time.Now)
		if err != nil {
			return fail(stderr, err)
		}
		report, err := pipeline.New(fs, conf, lists, date).RunIconifyDir(ctx)
		return exitCode(report, err, stderr)
	case "generate":
		return generate(ctx, fs, conf, lists, stderr)
	case "publish":
		p, err := publish.Connect(conf.Publish)
		if err != nil {
			return fail(stderr, err)
		}
		prefixes, err := p.PublishAll(ctx, fs, conf.OutputDir, lists)
		if err == nil {
			pterm.Info.Printfln("published %d packages", len(prefixes))
		}
		return exitCode(nil, err, stderr)
	}
	return exitUsage
}

func fetch(ctx context.Context, fs afero.Fs, conf *config.Config, lists filter.Lists) error {
	entries, err := codepoints.LoadIndex(fs, conf.Index)
	if err != nil {
		return err
	}
	fetcher := resources.Fetcher{Fs: fs}
	for _, e := range entries {
		if !lists.Include(e.Prefix) {
			continue
		}
		pterm.Info.Printfln("fetching %s", e.Prefix)
		if err = fetcher.FetchAll(ctx, e.Downloads(conf.SourceDir)); err != nil {
			return err
		}
	}
	return nil
}

// generate processes index sets and, if present, intermediate documents.
func generate(ctx context.Context, fs afero.Fs, conf *config.Config, lists filter.Lists, stderr io.Writer) int {
	date, err := conf.PackageDate(time.Now)
	if err != nil {
		return fail(stderr, err)
	}
	p := pipeline.New(fs, conf, lists, date)
	total := &pipeline.Report{}
	if ok, _ := afero.Exists(fs, conf.Index); ok {
		report, err := p.RunIndex(ctx)
		merge(total, report)
		if err != nil {
			return exitCode(total, err, stderr)
		}
	}
	if ok, _ := afero.DirExists(fs, conf.IntermediateDir); ok {
		report, err := p.RunIntermediateDir(ctx)
		merge(total, report)
		if err != nil {
			return exitCode(total, err, stderr)
		}
	}
	return exitCode(total, nil, stderr)
}

func merge(total, r *pipeline.Report) {
	if r == nil {
		return
	}
	total.Processed = append(total.Processed, r.Processed...)
	total.Failed = append(total.Failed, r.Failed...)
	total.Excluded = append(total.Excluded, r.Excluded...)
	total.Warnings = append(total.Warnings, r.Warnings...)
	total.Files = append(total.Files, r.Files...)
}

// exitCode prints the outcome of a run and maps it to an exit code.
func exitCode(report *pipeline.Report, err error, stderr io.Writer) int {
	if report != nil {
		for _, w := range report.Warnings {
			pterm.Warning.Println(w.String())
		}
		for _, f := range report.Failed {
			pterm.Error.Println(f.String())
		}
		pterm.Info.Println(report.Summary())
	}
	if err != nil {
		return fail(stderr, err)
	}
	if report != nil && !report.OK() {
		return exitFailed
	}
	return exitOK
}

func fail(stderr io.Writer, err error) int {
	core.UserError(stderr, err)
	return exitFatal
}
