// Package encode renders parsed TGFF content as JSON, YAML or plain text.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ava12/tgff"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatSummary = "summary"
)

// Formats lists supported output formats.
var Formats = []string{FormatJSON, FormatYAML, FormatSummary}

// JSON writes content as JSON document, indent is the number of spaces, 0 means compact output.
func JSON(w io.Writer, c *tgff.Content, indent int) error {
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(c)
}

// YAML writes content as YAML document, indent is the number of spaces.
func YAML(w io.Writer, c *tgff.Content, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if e := enc.Encode(c); e != nil {
		return e
	}
	return enc.Close()
}

// Write writes content using one of Formats.
func Write(w io.Writer, c *tgff.Content, format string, indent int) error {
	switch format {
	case FormatJSON:
		return JSON(w, c, indent)
	case FormatYAML:
		return YAML(w, c, indent)
	case FormatSummary:
		return Text(w, Summarize(c))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// GraphSummary holds element counts of a single graph.
type GraphSummary struct {
	Name      string
	ID        uint64
	Tasks     int
	Arcs      int
	Deadlines int
}

// TableSummary holds dimensions of a single table.
type TableSummary struct {
	Name    string
	ID      uint64
	Columns int
	Rows    int
}

// Summary holds element counts of the whole content.
type Summary struct {
	Attributes map[string]uint64
	Graphs     []GraphSummary
	Tables     []TableSummary
}

func Summarize(c *tgff.Content) Summary {
	s := Summary{Attributes: c.Attributes}
	for _, g := range c.Graphs {
		s.Graphs = append(s.Graphs, GraphSummary{g.Name, g.ID, len(g.Tasks), len(g.Arcs), len(g.Deadlines)})
	}
	for _, t := range c.Tables {
		s.Tables = append(s.Tables, TableSummary{t.Name, t.ID, len(t.Columns), t.Rows()})
	}
	return s
}

// Tasks returns the total number of tasks in all graphs.
func (s Summary) Tasks() int {
	total := 0
	for _, g := range s.Graphs {
		total += g.Tasks
	}
	return total
}

// Text writes summary as plain text, one line per attribute, graph, or table.
func Text(w io.Writer, s Summary) error {
	var b strings.Builder

	names := make([]string, 0, len(s.Attributes))
	for name := range s.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "@%s %d\n", name, s.Attributes[name])
	}

	for _, g := range s.Graphs {
		fmt.Fprintf(&b, "@%s %d: %d tasks, %d arcs, %d deadlines\n", g.Name, g.ID, g.Tasks, g.Arcs, g.Deadlines)
	}
	for _, t := range s.Tables {
		fmt.Fprintf(&b, "@%s %d: %d columns, %d rows\n", t.Name, t.ID, t.Columns, t.Rows)
	}

	_, e := io.WriteString(w, b.String())
	return e
}
