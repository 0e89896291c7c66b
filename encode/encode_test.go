package encode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ava12/tgff"
	"github.com/ava12/tgff/internal/test"
)

func parseFixture(t *testing.T, name string) *tgff.Content {
	t.Helper()
	c, e := tgff.Parse(test.Fixture(t, name))
	require.NoError(t, e)
	return c
}

func TestJSON(t *testing.T) {
	c := parseFixture(t, "simple.tgff")
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, c, 2))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1180.0, doc["attributes"].(map[string]any)["HYPERPERIOD"])
	graph := doc["graphs"].([]any)[0].(map[string]any)
	assert.Equal(t, "TASK_GRAPH", graph["name"])
	arc := graph["arcs"].([]any)[1].(map[string]any)
	assert.Equal(t, map[string]any{"id": 1.0, "from": 0.0, "to": 2.0, "type": 3.0}, arc)
	assert.Contains(t, buf.String(), "\n  \"attributes\"")

	buf.Reset()
	require.NoError(t, JSON(&buf, c, 0))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestYAML(t *testing.T) {
	c := parseFixture(t, "simple.tgff")
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, c, 2))

	var doc struct {
		Tables []struct {
			Name       string             `yaml:"name"`
			Attributes map[string]float64 `yaml:"attributes"`
			Columns    []struct {
				Name string    `yaml:"name"`
				Data []float64 `yaml:"data"`
			} `yaml:"columns"`
		} `yaml:"tables"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, "PE", doc.Tables[0].Name)
	assert.Equal(t, 70.07, doc.Tables[0].Attributes["price"])
	assert.Equal(t, "task_time", doc.Tables[0].Columns[3].Name)
	assert.Equal(t, []float64{34, -0.0012}, doc.Tables[0].Columns[3].Data)
}

func TestSummary(t *testing.T) {
	c := parseFixture(t, "five_graphs.tgff")
	s := Summarize(c)
	require.Len(t, s.Graphs, 5)
	assert.Equal(t, GraphSummary{"TASK_GRAPH", 2, 24, 23, 12}, s.Graphs[2])
	assert.Equal(t, TableSummary{"COMMUN", 0, 2, 5}, s.Tables[2])
	assert.Equal(t, 84, s.Tasks())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, FormatSummary, 0))
	assert.Equal(t, "@HYPERPERIOD 1180\n"+
		"@TASK_GRAPH 0: 12 tasks, 11 arcs, 6 deadlines\n"+
		"@TASK_GRAPH 1: 20 tasks, 19 arcs, 10 deadlines\n"+
		"@TASK_GRAPH 2: 24 tasks, 23 arcs, 12 deadlines\n"+
		"@TASK_GRAPH 3: 8 tasks, 7 arcs, 4 deadlines\n"+
		"@TASK_GRAPH 4: 20 tasks, 19 arcs, 10 deadlines\n"+
		"@PE 0: 4 columns, 13 rows\n"+
		"@PE 1: 4 columns, 13 rows\n"+
		"@COMMUN 0: 2 columns, 5 rows\n", buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.EqualError(t, Write(&buf, tgff.NewContent(), "xml", 0), `unknown output format "xml"`)
	assert.Zero(t, buf.Len())
}
