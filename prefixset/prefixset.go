// Package prefixset loads IP prefix allowlists from plain text files.
// The API server uses one to restrict client addresses.
package prefixset

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/academe-go/academe/bytestrings"
	"github.com/academe-go/academe/mmap"
	"go4.org/netipx"
)

// Config points at a prefix list file.
type Config struct {
	Path string `json:"path"`
}

// IPSet reads and parses the configured file.
func (c Config) IPSet() (*netipx.IPSet, error) {
	text, err := mmap.ReadFile[string](c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefix list %s: %w", c.Path, err)
	}
	defer mmap.Unmap(text)

	s, err := IPSetFromText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prefix list %s: %w", c.Path, err)
	}
	return s, nil
}

// IPSetFromText builds a prefix set from text with one entry per line.
// An entry is a CIDR prefix or a bare address, which stands for itself
// alone. Surrounding whitespace is trimmed, and empty lines and lines
// starting with '#' are skipped.
func IPSetFromText(text string) (*netipx.IPSet, error) {
	var (
		line string
		sb   netipx.IPSetBuilder
	)

	for {
		line, text = bytestrings.NextNonEmptyLine(text)
		if len(line) == 0 {
			break
		}

		entry := strings.TrimSpace(line)
		if entry == "" || entry[0] == '#' {
			continue
		}

		if strings.IndexByte(entry, '/') != -1 {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid prefix %q: %w", entry, err)
			}
			sb.AddPrefix(prefix)
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %w", entry, err)
		}
		sb.Add(addr)
	}

	return sb.IPSet()
}

// IPSetToText renders the set as its sorted minimal prefixes, one per
// line, in the format accepted by [IPSetFromText].
func IPSetToText(s *netipx.IPSet) string {
	var b strings.Builder
	for _, prefix := range s.Prefixes() {
		b.WriteString(prefix.String())
		b.WriteByte('\n')
	}
	return b.String()
}
