package dataset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/academe-go/academe/bytestrings"
	"github.com/academe-go/academe/hostname"
	"github.com/academe-go/academe/mmap"
	"github.com/academe-go/academe/suffixset"
	"go.uber.org/zap"
)

// Reserved filenames at the source tree root.
const (
	StoplistFilename = "stoplist.txt"
	TLDsFilename     = "tlds.txt"
	AbusedFilename   = "abused.txt"
)

// Builder accumulates dataset entries and provides methods
// for writing them in serialized form.
type Builder struct {
	Institutions map[string][]string
	Stoplist     suffixset.Set
	TLDs         suffixset.Set
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		Institutions: make(map[string][]string),
		Stoplist:     suffixset.NewSet(0),
		TLDs:         suffixset.NewSet(0),
	}
}

// Dataset returns the built dataset.
func (b *Builder) Dataset() *Dataset {
	return &Dataset{
		Institutions: suffixset.Map[[]string](b.Institutions),
		Stoplist:     b.Stoplist,
		TLDs:         b.TLDs,
	}
}

// BuilderFromTree builds a dataset from the source tree rooted at root.
//
// The tree carries stoplist.txt and tlds.txt at its root, an abused.txt
// that is ignored entirely, and institution .txt files nested TLD-first
// (edu/stanford.txt holds the names for stanford.edu). A missing or
// unreadable control file aborts the build. Unreadable institution files
// are logged and skipped. When two files derive the same domain key, the
// first one visited wins; files are visited in lexical path order, so
// repeated builds of the same tree merge identically.
func BuilderFromTree(root string, logger *zap.Logger) (*Builder, error) {
	b := NewBuilder()

	if err := loadControlList(filepath.Join(root, StoplistFilename), b.Stoplist, logger); err != nil {
		return nil, fmt.Errorf("failed to load stoplist: %w", err)
	}
	if err := loadControlList(filepath.Join(root, TLDsFilename), b.TLDs, logger); err != nil {
		return nil, fmt.Errorf("failed to load academic TLDs: %w", err)
	}

	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		switch d.Name() {
		case StoplistFilename, TLDsFilename, AbusedFilename:
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		b.addInstitutionFile(path, filepath.ToSlash(rel), logger)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to walk source tree: %w", err)
	}

	return b, nil
}

// addInstitutionFile inserts the institution file at path, read as the
// name list for the domain key derived from relPath. Files that fail to
// read or produce an invalid key are logged and skipped. Empty files and
// files whose key is already taken are skipped silently.
func (b *Builder) addInstitutionFile(path, relPath string, logger *zap.Logger) {
	key, err := hostname.ToASCII(KeyFromPath(relPath))
	if err != nil {
		logger.Warn("Skipping institution file with invalid domain key",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	// Presence only ever changes when a non-empty name list is inserted,
	// so checking before the read keeps first-seen-wins intact.
	if _, ok := b.Institutions[key]; ok {
		return
	}

	names, err := parseLineListFile(path)
	if err != nil {
		logger.Warn("Skipping unreadable institution file",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	if len(names) == 0 {
		return
	}

	b.Institutions[key] = names
}

// loadControlList parses the flat line-list at name into set. Entries are
// normalized to lowercase ASCII; entries that fail normalization are
// logged and skipped.
func loadControlList(name string, set suffixset.Set, logger *zap.Logger) error {
	entries, err := parseLineListFile(name)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		suffix, err := hostname.ToASCII(entry)
		if err != nil {
			logger.Warn("Skipping invalid control list entry",
				zap.String("path", name),
				zap.String("entry", entry),
				zap.Error(err),
			)
			continue
		}
		set.Insert(suffix)
	}
	return nil
}

// parseLineListFile reads and parses the flat line-list file at name.
func parseLineListFile(name string) ([]string, error) {
	data, err := mmap.ReadFile[string](name)
	if err != nil {
		return nil, err
	}
	defer mmap.Unmap(data)
	return parseLineList(data), nil
}

// parseLineList parses a flat line-list: entries are trimmed of
// surrounding whitespace, empty lines and #-comment lines are dropped,
// and the remaining order is preserved. Entries are cloned so the
// backing text may be unmapped.
func parseLineList(text string) []string {
	var entries []string
	var line string
	for {
		line, text = bytestrings.NextNonEmptyLine(text)
		if len(line) == 0 {
			return entries
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		entries = append(entries, strings.Clone(line))
	}
}
