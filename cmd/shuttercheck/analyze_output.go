package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"shuttercheck/internal/analysis"
	"shuttercheck/internal/metadata"
	"shuttercheck/internal/record"
	"shuttercheck/internal/report"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

func renderReport(w io.Writer, rep *report.Report) {
	colorize := shouldColorize(w)

	fmt.Fprintf(w, "Folder:  %s\n", rep.Folder)
	fmt.Fprintf(w, "Camera:  %s\n", rep.CameraLabel())
	fmt.Fprintf(w, "Records: %d scanned, %d usable, %d undated, %d dropped, %d filtered out\n",
		rep.Scanned, rep.Usable, rep.Undated, len(rep.Dropped), rep.FilteredOut)
	fmt.Fprintf(w, "Run:     %s\n\n", rep.RunID)

	fmt.Fprintln(w, renderTable(
		[]string{"#", "Captured", "Primary", "Secondary", "Serial", "File"},
		timelineRows(rep.Photos),
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
		colorize,
	))

	for _, dropped := range rep.Dropped {
		line := fmt.Sprintf("dropped %s: %s", dropped.Filename, dropped.Reason)
		if colorize {
			line = ansiYellow + line + ansiReset
		}
		fmt.Fprintln(w, line)
	}
	if len(rep.Dropped) > 0 {
		fmt.Fprintln(w)
	}

	renderFindings(w, rep, colorize)
}

func timelineRows(photos []record.Photo) [][]string {
	rows := make([][]string, 0, len(photos))
	for i, p := range photos {
		captured := "-"
		if p.Dated() {
			captured = metadata.FormatTimestamp(p.CaptureTime)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			captured,
			counterCell(p.Primary),
			counterCell(p.Secondary),
			textCell(p.Serial),
			p.Filename,
		})
	}
	return rows
}

func counterCell(c record.Counter) string {
	if !c.Present {
		return "-"
	}
	return strconv.FormatInt(c.Value, 10)
}

func textCell(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func renderFindings(w io.Writer, rep *report.Report, colorize bool) {
	if len(rep.Findings) == 0 {
		line := "[OK] No counter irregularities detected."
		if colorize {
			line = ansiGreen + line + ansiReset
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, "     This does not prove the counter was never reset, but nothing looks off.")
		return
	}

	rows := make([][]string, 0, len(rep.Findings))
	for _, f := range rep.Findings {
		rows = append(rows, []string{
			string(f.Severity),
			f.Code,
			findingFiles(f),
			f.Detail,
		})
	}
	headline := fmt.Sprintf("[WARN] %d finding(s) across %d usable record(s):", len(rep.Findings), rep.Usable)
	if colorize {
		color := ansiYellow
		if rep.Suspicious() {
			color = ansiRed
		}
		headline = color + headline + ansiReset
	}
	fmt.Fprintln(w, headline)
	fmt.Fprintln(w, renderTable(
		[]string{"Severity", "Code", "Files", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		colorize,
	))
	fmt.Fprintln(w, "A counter decrease can mean a service-center shutter or mainboard swap")
	fmt.Fprintln(w, "(legitimate) or a deliberate reset. Cross-check the seller's story and")
	fmt.Fprintln(w, "any service paperwork before buying.")
}

func findingFiles(f analysis.Finding) string {
	if f.PrevFile == "" {
		return f.File
	}
	return f.PrevFile + " -> " + f.File
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
