package dataset

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	table, err := Read(strings.NewReader("temp,city\n20,Oslo\n,Rome\n-3.5,Oslo\n"))
	require.NoError(t, err)

	want := []Summary{
		{Index: 1, Name: "temp", Kind: "numeric", Missing: 1, Min: -3.5, Max: 20},
		{Index: 2, Name: "city", Kind: "categorical", Min: 0, Max: 1},
	}
	if diff := cmp.Diff(want, table.Summarize()); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	if got := (Table{}).Summarize(); len(got) != 0 {
		t.Errorf("Summarize() = %v, want empty", got)
	}
}
