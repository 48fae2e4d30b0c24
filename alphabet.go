package b58ify

import "sync"

// alphabet is every character that [Transform] accepts; the ASCII alphanumerics less the digit zero.
const alphabet = "123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// table is a membership set indexed by ASCII code point.
type table [128]bool

func newTable(chars string) *table {
	t := &table{}
	for _, r := range chars {
		t[r] = true
	}
	return t
}

func (t *table) contains(r rune) bool {
	return r >= 0 && r < rune(len(t)) && t[r]
}

// newAlphabetTable returns an accessor that builds the table for chars on first use.
// Concurrent first callers wait for that single build; later calls take no lock.
func newAlphabetTable(chars string) func() *table {
	return sync.OnceValue(func() *table {
		return newTable(chars)
	})
}

// alphabetTable returns the process-wide table.
var alphabetTable = newAlphabetTable(alphabet) //nolint:gochecknoglobals
