package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/academe-go/academe/classifier"
	"github.com/fatih/color"
)

type format string

const (
	formatText  format = "txt"
	formatJSON  format = "json"
	formatJSONL format = "jsonl"
	formatCSV   format = "csv"
)

// detectFormat detects the output format from the filename extension.
func detectFormat(filename string) format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return formatJSON
	case ".jsonl", ".ndjson":
		return formatJSONL
	case ".csv":
		return formatCSV
	default:
		return formatText
	}
}

// writeResults writes results to the named file in the format detected from
// its extension, or to stdout when filename is empty.
func writeResults(filename string, results []classifier.Result) error {
	if filename == "" {
		if jsonOutput {
			return writeJSON(os.Stdout, results)
		}
		return writeConsole(results)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	switch detectFormat(filename) {
	case formatJSON:
		err = writeJSON(f, results)
	case formatJSONL:
		err = writeJSONL(f, results)
	case formatCSV:
		err = writeCSV(f, results)
	default:
		err = writeText(f, results)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeJSON(w io.Writer, results []classifier.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeJSONL(w io.Writer, results []classifier.Result) error {
	enc := json.NewEncoder(w)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, results []classifier.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"input", "host", "academic", "under_tld", "stoplisted", "school_names"}); err != nil {
		return err
	}
	for i := range results {
		r := &results[i]
		if err := cw.Write([]string{
			r.Input,
			r.Host,
			strconv.FormatBool(r.Academic),
			strconv.FormatBool(r.UnderTLD),
			strconv.FormatBool(r.Stoplisted),
			strings.Join(r.SchoolNames, "; "),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeText writes academic inputs only, one per line.
func writeText(w io.Writer, results []classifier.Result) error {
	for i := range results {
		if !results[i].Academic {
			continue
		}
		if _, err := fmt.Fprintln(w, results[i].Input); err != nil {
			return err
		}
	}
	return nil
}

// writeConsole lists one colored verdict per input on stdout.
func writeConsole(results []classifier.Result) error {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for i := range results {
		r := &results[i]
		verdict := "non-academic"
		switch {
		case r.Academic:
			verdict = green.Sprint("academic")
		case r.Stoplisted:
			verdict = yellow.Sprint("stoplisted")
		}
		if _, err := fmt.Printf("%-40s %s\n", r.Input, verdict); err != nil {
			return err
		}
	}
	return nil
}
