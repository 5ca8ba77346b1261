package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	table := NewTable(
		[]string{"A", "B"},
		[]string{"first", "second"},
	)

	rows := table.Snapshot()
	require.Len(t, rows, 2)

	// Insertion order preserved, all rows start at zero.
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "B", rows[1].Name)
	assert.Equal(t, 0, rows[0].Score)
	assert.Equal(t, 0, rows[1].Score)
	assert.Equal(t, "first", rows[0].Detail)
	assert.Equal(t, "second", rows[1].Detail)
	assert.False(t, rows[0].Updated)
	assert.False(t, rows[1].Updated)
}

func TestNewTable_DuplicateNamesIgnored(t *testing.T) {
	table := NewTable([]string{"A", "A", "B"}, []string{"one", "two", "three"})

	rows := table.Snapshot()
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "one", rows[0].Detail)
}

func TestTable_Update(t *testing.T) {
	table := NewTable([]string{"TCP:443"}, []string{"HTTPS connectivity"})

	table.Update("TCP:443", 10, "HTTPS connectivity")

	rows := table.Snapshot()
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].Score)
	assert.Equal(t, BandGood, rows[0].Band())
}

func TestTable_UpdateIsIdempotent(t *testing.T) {
	table := NewTable([]string{"DNS"}, []string{"Domain resolution"})

	table.Update("DNS", 5, "Domain resolution")
	once := table.Snapshot()

	table.Update("DNS", 5, "Domain resolution")
	twice := table.Snapshot()

	assert.Equal(t, once, twice)
}

func TestTable_UpdateUnknownNameIsNoOp(t *testing.T) {
	table := NewTable([]string{"X", "Y"}, []string{"x", "y"})
	before := table.Snapshot()

	assert.NotPanics(t, func() {
		table.Update("Z", 10, "should vanish")
	})

	assert.Equal(t, before, table.Snapshot())
}

func TestTable_SnapshotMidCycle(t *testing.T) {
	// A cycle that has updated A but not yet B must show A's new score and
	// B's previous value, never a torn row.
	table := NewTable([]string{"A", "B"}, []string{"a", "b"})

	table.Update("A", 10, "a")

	rows := table.Snapshot()
	require.Len(t, rows, 2)
	assert.Equal(t, 10, rows[0].Score)
	assert.True(t, rows[0].Updated)
	assert.Equal(t, 0, rows[1].Score)
	assert.False(t, rows[1].Updated)
}

func TestTable_SnapshotIsACopy(t *testing.T) {
	table := NewTable([]string{"A"}, []string{"a"})
	snap := table.Snapshot()

	table.Update("A", 9, "changed")

	assert.Equal(t, 0, snap[0].Score)
	assert.Equal(t, "a", snap[0].Detail)
}

func TestTable_ConcurrentReadersAndWriter(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"}, []string{"a", "b", "c"})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			table.Update("A", i%11, "a")
			table.Update("B", (i+5)%11, "b")
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			rows := table.Snapshot()
			require.Len(t, rows, 3)
			for _, r := range rows {
				// Scores only ever come from Update with in-range values.
				assert.GreaterOrEqual(t, r.Score, MinScore)
				assert.LessOrEqual(t, r.Score, MaxScore)
			}
		}
	}()

	wg.Wait()
}

func TestRunState(t *testing.T) {
	rs := NewRunState()
	assert.True(t, rs.Running())

	rs.Stop()
	assert.False(t, rs.Running())

	// One-shot: stopping again stays stopped.
	rs.Stop()
	assert.False(t, rs.Running())
}
