package tgff

// Content is the content of a TGFF file.
type Content struct {
	// Attributes contains global attributes such as HYPERPERIOD.
	Attributes map[string]uint64 `json:"attributes" yaml:"attributes"`

	// Graphs contains task graphs in file order.
	Graphs []*Graph `json:"graphs" yaml:"graphs"`

	// Tables contains data tables in file order.
	Tables []*Table `json:"tables" yaml:"tables"`
}

// Graph is a task graph.
type Graph struct {
	// Name is the block name, e.g. TASK_GRAPH.
	Name string `json:"name" yaml:"name"`

	// ID is the block number. Blocks are numbered from 0 separately for each name,
	// so graphs with different names may share the same ID.
	ID uint64 `json:"id" yaml:"id"`

	// Attributes contains graph attributes such as PERIOD.
	Attributes map[string]uint64 `json:"attributes" yaml:"attributes"`

	// Tasks are the vertices of the graph.
	Tasks []Task `json:"tasks" yaml:"tasks"`

	// Arcs are the edges representing dependencies between tasks.
	Arcs []Arc `json:"arcs" yaml:"arcs"`

	// Deadlines are hard deadlines of a subset of tasks.
	Deadlines []Deadline `json:"deadlines" yaml:"deadlines"`
}

// Task is a graph vertex.
type Task struct {
	ID   uint64 `json:"id" yaml:"id"`
	Kind uint64 `json:"type" yaml:"type"`
}

// Arc is a graph edge, From and To refer to task ids of the same graph.
type Arc struct {
	ID   uint64 `json:"id" yaml:"id"`
	From uint64 `json:"from" yaml:"from"`
	To   uint64 `json:"to" yaml:"to"`
	Kind uint64 `json:"type" yaml:"type"`
}

// Deadline is a hard deadline at time At for task On.
type Deadline struct {
	ID uint64 `json:"id" yaml:"id"`
	On uint64 `json:"on" yaml:"on"`
	At uint64 `json:"at" yaml:"at"`
}

// Table is a data table.
type Table struct {
	// Name is the block name, e.g. PE or COMMUN.
	Name string `json:"name" yaml:"name"`

	// ID is the block number. Blocks are numbered from 0 separately for each name,
	// e.g. PE 0, PE 1, COMMUN 0; use Name and ID together to identify a table.
	ID uint64 `json:"id" yaml:"id"`

	// Attributes contains table attributes such as price.
	Attributes map[string]float64 `json:"attributes" yaml:"attributes"`

	// Columns contains table data, all columns have the same length.
	Columns []*Column `json:"columns" yaml:"columns"`
}

// Column is a named column of a table.
type Column struct {
	Name string    `json:"name" yaml:"name"`
	Data []float64 `json:"data" yaml:"data"`
}

func NewContent() *Content {
	return &Content{Attributes: make(map[string]uint64)}
}

func NewGraph(name string, id uint64) *Graph {
	return &Graph{Name: name, ID: id, Attributes: make(map[string]uint64)}
}

func NewTask(id, kind uint64) Task {
	return Task{ID: id, Kind: kind}
}

func NewArc(id, from, to, kind uint64) Arc {
	return Arc{ID: id, From: from, To: to, Kind: kind}
}

func NewDeadline(id, on, at uint64) Deadline {
	return Deadline{ID: id, On: on, At: at}
}

func NewTable(name string, id uint64) *Table {
	return &Table{Name: name, ID: id, Attributes: make(map[string]float64)}
}

func NewColumn(name string) *Column {
	return &Column{Name: name}
}

// Graph returns the first graph with given id or nil.
// Graphs with different names may share an id, see Graph.ID.
func (c *Content) Graph(id uint64) *Graph {
	for _, g := range c.Graphs {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Table returns the table with given name and id or nil.
func (c *Content) Table(name string, id uint64) *Table {
	for _, t := range c.Tables {
		if t.Name == name && t.ID == id {
			return t
		}
	}
	return nil
}

// Column returns the column with given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Data)
}
