// Dataset builder walks an academic domain source tree and writes the
// serialized dataset artifact, optionally emitting the provenance record
// as a generated Go source file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/academe-go/academe/dataset"
	"github.com/academe-go/academe/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	root              string
	out               string
	genProvenance     string
	provenancePackage string
	printCounts       bool
	logLevel          zapcore.Level
)

func init() {
	flag.StringVar(&root, "root", "", "Path to the dataset source tree")
	flag.StringVar(&out, "out", "academic.sbd.gz", "Path to the output dataset artifact")
	flag.StringVar(&genProvenance, "genProvenance", "", "Path to write the provenance record as a generated Go source file. If empty, no file is written")
	flag.StringVar(&provenancePackage, "provenancePackage", "dataset", "Package name for the generated provenance file")
	flag.BoolVar(&printCounts, "print", false, "Print dataset entry counts and the artifact digest")
	flag.TextVar(&logLevel, "logLevel", zapcore.InfoLevel, "Log level.\nAvailable levels: debug, info, warn, error, dpanic, panic, fatal")
}

func main() {
	flag.Parse()

	if root == "" {
		fmt.Fprintln(os.Stderr, "Missing -root <path to dataset source tree>.")
		flag.Usage()
		os.Exit(1)
	}

	logger := logging.NewConsoleLogger(logLevel, true, true)
	defer logger.Sync()

	b, err := dataset.BuilderFromTree(root, logger)
	if err != nil {
		logger.Fatal("Failed to build dataset",
			zap.String("root", root),
			zap.Error(err),
		)
	}

	fout, err := os.Create(out)
	if err != nil {
		logger.Fatal("Failed to create output file",
			zap.String("out", out),
			zap.Error(err),
		)
	}

	digest, err := b.WriteGob(fout)
	if err != nil {
		logger.Fatal("Failed to write dataset artifact",
			zap.String("out", out),
			zap.Error(err),
		)
	}

	if err = fout.Close(); err != nil {
		logger.Fatal("Failed to close output file",
			zap.String("out", out),
			zap.Error(err),
		)
	}

	p := dataset.CaptureProvenance(root, digest)
	if p.Incomplete {
		logger.Warn("Provenance record is incomplete",
			zap.String("commit", p.Commit),
			zap.String("commitDate", p.CommitDate),
			zap.String("origin", p.Origin),
		)
	}

	if genProvenance != "" {
		if err = p.WriteGoFile(genProvenance, provenancePackage); err != nil {
			logger.Fatal("Failed to write provenance file",
				zap.String("genProvenance", genProvenance),
				zap.Error(err),
			)
		}
	}

	logger.Info("Wrote dataset artifact",
		zap.String("out", out),
		zap.Int("institutions", len(b.Institutions)),
		zap.Int("stoplisted", len(b.Stoplist)),
		zap.Int("tlds", len(b.TLDs)),
		zap.String("commit", p.Commit),
	)

	if printCounts {
		fmt.Printf("institutions: %d\nstoplist: %d\ntlds: %d\ndigest: %s\n",
			len(b.Institutions), len(b.Stoplist), len(b.TLDs), p.ArtifactDigest)
	}
}
