package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/academe-go/academe/classifier"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <email or domain>",
	Short: "Classify a single email address or domain",
	Long: `Classify a single email address or domain.

An input is academic when its hostname falls under an academic TLD or a
known institution domain, and is not stoplisted.

Examples:
  academe check lreilly@stanford.edu
  academe check ox.ac.uk
  academe check someone@alumni.stanford.edu --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newCLILogger()
	defer logger.Sync()

	cl := loadClassifier(logger)
	r := cl.Classify(args[0])

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	printResult(r)
	return nil
}

func printResult(r classifier.Result) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Printf("Input:      %s\n", r.Input)
	fmt.Printf("Host:       %s\n", r.Host)

	fmt.Print("Academic:   ")
	if r.Academic {
		green.Println("YES")
	} else {
		red.Println("NO")
	}

	if r.Stoplisted {
		fmt.Printf("Stoplisted: %s\n", yellow.Sprint("yes"))
	}
	if r.UnderTLD {
		fmt.Println("Under TLD:  yes")
	}

	if len(r.SchoolNames) > 0 {
		cyan.Println("Institutions:")
		for _, name := range r.SchoolNames {
			fmt.Printf("  %s\n", name)
		}
	}
}
