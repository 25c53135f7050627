package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/academe-go/academe/classifier"
	"github.com/academe-go/academe/worker"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	bulkFile    string
	bulkOutput  string
	bulkWorkers int
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Classify email addresses or domains from a file",
	Long: `Classify email addresses or domains from an input file, one per line.
Empty lines and lines starting with '#' are skipped.

The output format is detected from the output file extension:
.csv, .json, .jsonl and .txt (academic inputs only, one per line).
Without -o, results are listed on stdout.

Examples:
  academe bulk -f emails.txt
  academe bulk -f emails.txt -o results.csv
  academe bulk -f emails.txt -o academic.txt -w 16
  academe bulk -f emails.txt --json`,
	RunE: runBulk,
}

func init() {
	rootCmd.AddCommand(bulkCmd)

	bulkCmd.Flags().StringVarP(&bulkFile, "file", "f", "", "Input file with one email address or domain per line (required)")
	bulkCmd.Flags().StringVarP(&bulkOutput, "output", "o", "", "Output file. If empty, results go to stdout")
	bulkCmd.Flags().IntVarP(&bulkWorkers, "workers", "w", runtime.NumCPU(), "Number of concurrent workers")

	bulkCmd.MarkFlagRequired("file")
}

func runBulk(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	logger := newCLILogger()
	defer logger.Sync()

	inputs, err := loadInputs(bulkFile)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs found in %s", bulkFile)
	}

	cl := loadClassifier(logger)
	pool := worker.New(cl, bulkWorkers)

	// The bar shares stdout with the result listing, so it only runs
	// when results go to a file.
	var bar *progressbar.ProgressBar
	if !quiet && bulkOutput != "" {
		bar = progressbar.NewOptions(len(inputs),
			progressbar.OptionSetDescription("Classifying"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("inputs"),
		)
		pool.SetOnResult(func(classifier.Result) {
			bar.Add(1)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := pool.Process(ctx, inputs)
	if err != nil {
		return fmt.Errorf("classification interrupted: %w", err)
	}

	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	if err = writeResults(bulkOutput, results); err != nil {
		return err
	}

	if !quiet {
		printBulkSummary(pool, startTime)
		if bulkOutput != "" {
			fmt.Printf("\nResults saved to: %s\n", bulkOutput)
		}
	}

	return nil
}

func loadInputs(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var inputs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return inputs, nil
}

func printBulkSummary(pool *worker.Pool, startTime time.Time) {
	duration := time.Since(startTime)
	processed := pool.Processed()
	academic := pool.Academic()

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	fmt.Println()
	cyan.Println("Summary:")
	fmt.Printf("  Classified:   %d\n", processed)
	green.Printf("  Academic:     %d\n", academic)
	fmt.Printf("  Non-academic: %d\n", processed-academic)
	fmt.Printf("  Duration:     %s\n", duration.Round(time.Millisecond))
}
