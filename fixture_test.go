package tgff_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/tgff"
	"github.com/ava12/tgff/internal/test"
)

func TestSimpleFixture(t *testing.T) {
	c, e := tgff.Parse(test.Fixture(t, "simple.tgff"))
	require.NoError(t, e)

	assert.Equal(t, map[string]uint64{"HYPERPERIOD": 1180}, c.Attributes)
	require.Len(t, c.Graphs, 1)
	g := c.Graphs[0]
	assert.Equal(t, "TASK_GRAPH", g.Name)
	assert.Equal(t, uint64(590), g.Attributes["PERIOD"])
	assert.Equal(t, []tgff.Task{{ID: 0, Kind: 2}, {ID: 1, Kind: 7}, {ID: 2, Kind: 4}}, g.Tasks)
	assert.Equal(t, []tgff.Arc{{ID: 0, From: 0, To: 1, Kind: 0}, {ID: 1, From: 0, To: 2, Kind: 3}}, g.Arcs)
	assert.Equal(t, []tgff.Deadline{{ID: 0, On: 1, At: 590}, {ID: 1, On: 2, At: 580}}, g.Deadlines)

	require.Len(t, c.Tables, 1)
	table := c.Tables[0]
	assert.Equal(t, "PE", table.Name)
	assert.Equal(t, map[string]float64{"price": 70.07, "area": 0.0017}, table.Attributes)
	col, found := table.Column("task_time")
	require.True(t, found)
	assert.Equal(t, []float64{34, -1.2e-3}, col.Data)
	_, found = table.Column("missing")
	assert.False(t, found)
}

func TestFiveGraphsFixture(t *testing.T) {
	c, e := tgff.Parse(test.Fixture(t, "five_graphs.tgff"))
	require.NoError(t, e)

	assert.Equal(t, uint64(1180), c.Attributes["HYPERPERIOD"])

	tasks := []int{12, 20, 24, 8, 20}
	deadlines := []int{6, 10, 12, 4, 10}
	periods := []uint64{590, 1180, 295, 590, 1180}
	require.Len(t, c.Graphs, len(tasks))
	for i, g := range c.Graphs {
		assert.Equal(t, uint64(i), g.ID)
		assert.Len(t, g.Tasks, tasks[i], "graph %d", i)
		assert.Len(t, g.Arcs, tasks[i]-1, "graph %d", i)
		assert.Len(t, g.Deadlines, deadlines[i], "graph %d", i)
		assert.Equal(t, periods[i], g.Attributes["PERIOD"], "graph %d", i)
		for j, task := range g.Tasks {
			assert.Equal(t, uint64(j), task.ID)
		}
	}
	assert.Equal(t, tgff.NewTask(7, 10), c.Graphs[0].Tasks[7])
	assert.Equal(t, tgff.NewArc(10, 5, 11, 1), c.Graphs[0].Arcs[10])

	require.Len(t, c.Tables, 3)
	pe := c.Table("PE", 0)
	require.NotNil(t, pe)
	assert.Len(t, pe.Columns, 4)
	assert.Equal(t, 13, pe.Rows())
	for _, col := range pe.Columns {
		assert.Len(t, col.Data, 13, "column %s", col.Name)
	}
	col, _ := pe.Column("task_time")
	assert.Equal(t, 40.0, col.Data[12])
	col, _ = pe.Column("type")
	assert.Equal(t, 12.0, col.Data[12])

	assert.Equal(t, 2.1e-3, c.Table("PE", 1).Attributes["area"])
	commun := c.Table("COMMUN", 0)
	require.NotNil(t, commun)
	assert.Equal(t, 150.0, commun.Attributes["bandwidth"])
	assert.Equal(t, 5, commun.Rows())
}

func TestWhitespaceInsensitivity(t *testing.T) {
	minimal := "@HYPERPERIOD 10\n@G 0 {PERIOD 5 TASK t0_0 TYPE 1 TASK t0_1 TYPE 2 ARC a0_0 FROM t0_0 TO t0_1 TYPE 0 HARD_DEADLINE d0_0 ON t0_1 AT 5}" +
		"@T 0 {# a b\n1 2\n#-\n# x y\n1 2 3 4}"
	spaced := "\n\n@HYPERPERIOD \t 10\n\n\n@G\t0\n{\n\tPERIOD   5\n\tTASK\tt0_0\n TYPE\t1\n  TASK t0_1 TYPE 2\n" +
		"ARC  a0_0  FROM  t0_0\tTO\tt0_1  TYPE  0\n\nHARD_DEADLINE d0_0\n ON t0_1 \n AT 5\n}\n\n" +
		"@T 0 {\n#   a\tb\n\t1    2\n#-------\n#\tx   y\n 1 2\n 3 4\n\n}\n\n"

	c1, e := tgff.Parse(minimal)
	require.NoError(t, e)
	c2, e := tgff.Parse(spaced)
	require.NoError(t, e)
	assert.Empty(t, cmp.Diff(c1, c2))

	_, e = tgff.Parse(strings.Replace(spaced, "TYPE  0", "TYPE  0 %", 1))
	var pe *tgff.Error
	require.ErrorAs(t, e, &pe)
	assert.Equal(t, 12, pe.Line)
}

func TestParseBytes(t *testing.T) {
	c, e := tgff.ParseBytes("simple.tgff", []byte(test.Fixture(t, "simple.tgff")))
	require.NoError(t, e)
	assert.Len(t, c.Graphs, 1)
}

func BenchmarkParseFiveGraphs(b *testing.B) {
	content := test.Fixture(b, "five_graphs.tgff")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, e := tgff.Parse(content); e != nil {
			b.Fatal(e)
		}
	}
}

func BenchmarkParseSimple(b *testing.B) {
	content := test.Fixture(b, "simple.tgff")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, e := tgff.Parse(content); e != nil {
			b.Fatal(e)
		}
	}
}
