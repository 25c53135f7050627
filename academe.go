// Package academe classifies email addresses, hostnames, and URLs as
// belonging to academic institutions, using a prebuilt dataset of
// institution domains, academic top-level domains, and stoplisted domains.
package academe

// Version is the current version of academe.
const Version = "1.2.0"
