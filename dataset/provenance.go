package dataset

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultOrigin is the placeholder origin URL recorded when neither git
// nor the environment supplies one.
const DefaultOrigin = "https://github.com/academe-go/academic-domains"

// Provenance records which source tree revision a dataset artifact was
// built from, when, and the artifact's BLAKE3-256 digest in hex.
type Provenance struct {
	Commit         string `json:"commit"`
	CommitDate     string `json:"commitDate"`
	Origin         string `json:"origin"`
	BuiltAt        string `json:"builtAt"`
	ArtifactDigest string `json:"artifactDigest"`
	Incomplete     bool   `json:"incomplete"`
}

// CaptureProvenance gathers a best-effort provenance record for the
// source tree rooted at root. Each failed git query marks the record
// incomplete and falls back to the corresponding ACADEME_SOURCE_*
// environment variable, then to a placeholder. It never fails.
func CaptureProvenance(root string, digest [32]byte) Provenance {
	p := Provenance{
		Commit:         "unknown",
		CommitDate:     "unknown",
		Origin:         DefaultOrigin,
		BuiltAt:        time.Now().UTC().Format(time.RFC3339),
		ArtifactDigest: hex.EncodeToString(digest[:]),
	}

	if commit, err := gitOutput(root, "rev-parse", "HEAD"); err == nil {
		p.Commit = commit
	} else {
		p.Incomplete = true
		if commit = os.Getenv("ACADEME_SOURCE_COMMIT"); commit != "" {
			p.Commit = commit
		}
	}

	if commitDate, err := gitOutput(root, "log", "-1", "--format=%cI"); err == nil {
		p.CommitDate = commitDate
	} else {
		p.Incomplete = true
		if commitDate = os.Getenv("ACADEME_SOURCE_COMMIT_DATE"); commitDate != "" {
			p.CommitDate = commitDate
		}
	}

	if origin, err := gitOutput(root, "remote", "get-url", "origin"); err == nil {
		p.Origin = origin
	} else {
		p.Incomplete = true
		if origin = os.Getenv("ACADEME_SOURCE_ORIGIN"); origin != "" {
			p.Origin = origin
		}
	}

	return p
}

// gitOutput runs git with the given arguments against the repository at
// root and returns its trimmed standard output.
func gitOutput(root string, args ...string) (string, error) {
	out, err := exec.Command("git", append([]string{"-C", root}, args...)...).Output()
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(out))
	if s == "" {
		return "", errors.New("empty git output")
	}
	return s, nil
}

// WriteGoFile writes the record to path as a generated Go source file
// declaring it as the package-level variable BuiltProvenance in package
// pkg. When pkg is not "dataset", the type is import-qualified.
func (p Provenance) WriteGoFile(path, pkg string) error {
	var b bytes.Buffer
	b.WriteString("// Code generated by academe-dataset-builder. DO NOT EDIT.\n\npackage ")
	b.WriteString(pkg)
	b.WriteString("\n\n")

	typeName := "Provenance"
	if pkg != "dataset" {
		b.WriteString("import \"github.com/academe-go/academe/dataset\"\n\n")
		typeName = "dataset.Provenance"
	}

	fmt.Fprintf(&b, `// BuiltProvenance records the source tree revision the dataset
// artifact was built from.
var BuiltProvenance = %s{
	Commit:         %q,
	CommitDate:     %q,
	Origin:         %q,
	BuiltAt:        %q,
	ArtifactDigest: %q,
	Incomplete:     %t,
}
`, typeName, p.Commit, p.CommitDate, p.Origin, p.BuiltAt, p.ArtifactDigest, p.Incomplete)

	return os.WriteFile(path, b.Bytes(), 0o644)
}
