// Package classifier answers academic-domain queries against a loaded
// dataset.
//
// All queries are pure functions over the dataset snapshot and the input
// string, so a Classifier is safe for concurrent use.
package classifier

import (
	"regexp"
	"slices"
	"strings"

	"github.com/academe-go/academe/dataset"
	"github.com/academe-go/academe/hostname"
)

// emailShape is the coarse shape an input must have to count as an email
// address: a local part, one @, then a domain containing a dot, with no
// whitespace or extra @ anywhere.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]*\.[^\s@]*$`)

// Classifier classifies emails, domains, and URLs against a dataset.
type Classifier struct {
	ds *dataset.Dataset
}

// New returns a classifier backed by ds. The dataset must not be mutated
// afterwards.
func New(ds *dataset.Dataset) *Classifier {
	return &Classifier{ds: ds}
}

// IsUnderTLD reports whether input's domain falls under an academic TLD.
func (c *Classifier) IsUnderTLD(input string) bool {
	return c.ds.TLDs.Match(hostname.Canonical(input))
}

// IsStoplisted reports whether input's domain falls under a stoplisted
// suffix.
func (c *Classifier) IsStoplisted(input string) bool {
	return c.ds.Stoplist.Match(hostname.Canonical(input))
}

// SchoolNames returns the names of the institution whose domain suffix
// matches input. The returned slice is a fresh copy, and empty when no
// suffix matches.
func (c *Classifier) SchoolNames(input string) []string {
	return c.schoolNames(hostname.Canonical(input))
}

func (c *Classifier) schoolNames(host string) []string {
	names, ok := c.ds.Institutions.Lookup(host)
	if !ok {
		return []string{}
	}
	return slices.Clone(names)
}

// IsAcademic reports whether input is an email address with an academic
// domain: shaped like an email, not stoplisted, and either under an
// academic TLD or matching an institution entry. A stoplist match always
// overrides the other two.
func (c *Classifier) IsAcademic(input string) bool {
	if !emailShape.MatchString(strings.TrimSpace(input)) {
		return false
	}
	host := hostname.Canonical(input)
	return !c.ds.Stoplist.Match(host) && (c.ds.TLDs.Match(host) || c.ds.Institutions.Match(host))
}

// Result is the full classification of one input.
type Result struct {
	Input       string   `json:"input"`
	Host        string   `json:"host"`
	Academic    bool     `json:"academic"`
	UnderTLD    bool     `json:"underTLD"`
	Stoplisted  bool     `json:"stoplisted"`
	SchoolNames []string `json:"schoolNames"`
}

// Classify runs every query against input. Academic is only ever true for
// email-shaped input; the other fields are filled for bare domains and
// URLs as well.
func (c *Classifier) Classify(input string) Result {
	host := hostname.Canonical(input)
	r := Result{
		Input:       input,
		Host:        host,
		UnderTLD:    c.ds.TLDs.Match(host),
		Stoplisted:  c.ds.Stoplist.Match(host),
		SchoolNames: c.schoolNames(host),
	}
	r.Academic = emailShape.MatchString(strings.TrimSpace(input)) &&
		!r.Stoplisted && (r.UnderTLD || len(r.SchoolNames) > 0)
	return r
}
