package testutil

import (
	"testing"

	"bookdb/internal/catalog"

	"github.com/stretchr/testify/require"
)

// Sample titles used across tests.
const (
	EffectiveJava = "Effective Java"
	JCIP          = "Java Concurrency in Practice"
	SCJP          = "scjp"
)

// Sample authors used across tests.
const (
	JoshuaBloch = "Joshua Bloch"
	BrianGoetz  = "Brian Goetz"
	DougLea     = "Doug Lea"
	KathySierra = "Kathy Sierra"
)

// JCIPAuthors returns the authors of JCIP in cover order.
func JCIPAuthors() []string {
	return []string{BrianGoetz, JoshuaBloch, DougLea}
}

// SampleEntries returns the three sample books in insertion order.
func SampleEntries() []catalog.Entry {
	return []catalog.Entry{
		{Title: JCIP, Authors: JCIPAuthors()},
		{Title: EffectiveJava, Authors: []string{JoshuaBloch}},
		{Title: SCJP, Authors: []string{KathySierra}},
	}
}

// SeedCatalog adds the sample books to store.
func SeedCatalog(t testing.TB, store catalog.Store) {
	t.Helper()
	for _, e := range SampleEntries() {
		require.NoError(t, store.Add(e.Title, e.Authors))
	}
}
