package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/academe-go/academe/dataset"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Show dataset entry counts and build provenance",
	RunE:  runDataset,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
}

func runDataset(cmd *cobra.Command, args []string) error {
	logger := newCLILogger()
	defer logger.Sync()

	dc := dataset.Config{Path: viper.GetString("dataset")}
	ds := dc.Dataset(logger)
	p := dataset.BuiltProvenance

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Institutions int                `json:"institutions"`
			Stoplist     int                `json:"stoplist"`
			TLDs         int                `json:"tlds"`
			Provenance   dataset.Provenance `json:"provenance"`
		}{len(ds.Institutions), len(ds.Stoplist), len(ds.TLDs), p})
	}

	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	cyan.Println("Dataset:")
	fmt.Printf("  Institutions: %d\n", len(ds.Institutions))
	fmt.Printf("  Stoplist:     %d\n", len(ds.Stoplist))
	fmt.Printf("  TLDs:         %d\n", len(ds.TLDs))

	fmt.Println()
	cyan.Println("Provenance:")
	fmt.Printf("  Commit:      %s\n", p.Commit)
	fmt.Printf("  Commit date: %s\n", p.CommitDate)
	fmt.Printf("  Origin:      %s\n", p.Origin)
	fmt.Printf("  Built at:    %s\n", p.BuiltAt)
	fmt.Printf("  Digest:      %s\n", p.ArtifactDigest)
	if p.Incomplete {
		yellow.Println("  The record is incomplete.")
	}

	return nil
}
