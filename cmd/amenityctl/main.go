// Command amenityctl inspects opening hours and amenity datasets offline.
//
//	amenityctl check -open 22:00 -close 02:00 [-hour 23] [-mode circular]
//	amenityctl summary [-no-normalize] [-mode legacy] amenities.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"amenities-dashboard/hours"
	services "amenities-dashboard/service"
	"amenities-dashboard/util"
)

var (
	yes  = color.New(color.FgGreen)
	no   = color.New(color.FgHiBlack)
	warn = color.New(color.FgYellow)
	head = color.New(color.Bold)
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "amenityctl: %v\n", err)
		}
		os.Exit(2)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(out, "usage: amenityctl <check|summary> [flags]")
		return errUsage
	}
	switch args[0] {
	case "check":
		return runCheck(args[1:], out)
	case "summary":
		return runSummary(args[1:], out)
	default:
		fmt.Fprintf(out, "unknown command %q\n", args[0])
		return errUsage
	}
}

func mark(ok bool) string {
	if ok {
		return yes.Sprint("open")
	}
	return no.Sprint("closed")
}

func runCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(out)
	openStr := fs.String("open", "", "opening time HH:MM")
	closeStr := fs.String("close", "", "closing time HH:MM")
	hour := fs.Int("hour", -1, "also check a whole hour (0-23)")
	modeStr := fs.String("mode", string(hours.ModeLegacy), "day-part rule: legacy or circular")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	opening, err := hours.ParseTimeOfDay(*openStr)
	if err != nil {
		return fmt.Errorf("-open: %w", err)
	}
	closing, err := hours.ParseTimeOfDay(*closeStr)
	if err != nil {
		return fmt.Errorf("-close: %w", err)
	}
	mode, err := hours.ParseMode(*modeStr)
	if err != nil {
		return err
	}

	flags, err := hours.ComputeFlags(opening, closing, mode)
	if err != nil {
		return err
	}
	head.Fprintf(out, "%s-%s (%s)\n", opening, closing, mode)
	for _, w := range hours.Windows {
		fmt.Fprintf(out, "  %-8s %02d-%02d  %s\n", w.Label, w.StartHour, w.EndHour, mark(flags.Has(w.Part)))
	}

	if *hour >= 0 {
		at, err := hours.NewTimeOfDay(*hour, 0)
		if err != nil {
			return fmt.Errorf("-hour: %w", err)
		}
		open, err := hours.IsOpenAtHour(opening, closing, at)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  at %s     %s\n", at, mark(open))
	}
	return nil
}

func runSummary(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	fs.SetOutput(out)
	noNormalize := fs.Bool("no-normalize", false, "keep 00:00 closing times as midnight")
	modeStr := fs.String("mode", string(hours.ModeLegacy), "day-part rule: legacy or circular")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(out, "usage: amenityctl summary [flags] <dataset.csv|dataset.json>")
		return errUsage
	}
	mode, err := hours.ParseMode(*modeStr)
	if err != nil {
		return err
	}

	amenities, warnings, err := util.ReadAmenities(fs.Arg(0), util.ReadOptions{
		NormalizeMidnight: !*noNormalize,
		Mode:              mode,
	})
	if err != nil {
		return err
	}

	stats := services.ComputeStats(amenities)
	head.Fprintf(out, "%d amenities\n", len(amenities))
	for _, c := range stats.ByType {
		fmt.Fprintf(out, "  %-12s %d\n", c.Label, c.Count)
	}
	head.Fprintln(out, "open by time of day")
	for _, c := range stats.ByDayPart {
		fmt.Fprintf(out, "  %-12s %d\n", c.Label, c.Count)
	}
	for _, w := range warnings {
		warn.Fprintf(out, "skipped %s\n", w)
	}
	return nil
}
