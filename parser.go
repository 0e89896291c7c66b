package tgff

import (
	"github.com/ava12/tgff/source"
)

// Parser reads a single TGFF source and builds its Content.
// Parser is not safe for concurrent use, different parsers are independent.
type Parser struct {
	cursor  *source.Cursor
	content *Content
	blocks  map[string]uint64
}

// NewParser creates new Parser for input string.
func NewParser(input string) *Parser {
	return newParser(source.NewString(input))
}

func newParser(s *source.Source) *Parser {
	return &Parser{
		cursor:  source.NewCursor(s),
		content: NewContent(),
		blocks:  make(map[string]uint64),
	}
}

// Process parses the whole source.
// Returns parsed content or *Error describing the first syntax error, partial content is never returned.
func (p *Parser) Process() (*Content, error) {
	p.skipVoid()
	for {
		r, ok := p.cursor.Peek()
		if !ok {
			break
		}
		if r != '@' {
			return nil, p.errorf("found an unknown statement")
		}
		if e := p.processAt(); e != nil {
			return nil, e
		}
	}

	c := p.content
	p.content = NewContent()
	return c, nil
}

func (p *Parser) processAt() error {
	if e := p.skipChar('@'); e != nil {
		return e
	}

	name, e := p.getToken()
	if e != nil {
		return e
	}
	number, e := p.getNatural()
	if e != nil {
		return e
	}

	if r, ok := p.cursor.Peek(); ok && r == '{' {
		return p.processBlock(name, number)
	}

	p.content.Attributes[name] = number
	return nil
}

func (p *Parser) processBlock(name string, id uint64) error {
	expected := p.blocks[name]
	if id != expected {
		return p.errorf("expected `%s` id %d", name, expected)
	}
	p.blocks[name]++

	if e := p.skipChar('{'); e != nil {
		return e
	}

	var e error
	if r, ok := p.cursor.Peek(); ok && r == '#' {
		e = p.processTable(name, id)
	} else {
		e = p.processGraph(name, id)
	}
	if e != nil {
		return e
	}

	return p.skipChar('}')
}

type graphStatement int

const (
	attributeStatement graphStatement = iota
	taskStatement
	arcStatement
	deadlineStatement
)

var graphKeywords = map[string]graphStatement{
	"TASK":          taskStatement,
	"ARC":           arcStatement,
	"HARD_DEADLINE": deadlineStatement,
}

func (p *Parser) processGraph(name string, id uint64) error {
	graph := NewGraph(name, id)

	for {
		token, ok := p.readToken()
		if !ok {
			break
		}

		var e error
		switch graphKeywords[token] {
		case taskStatement:
			e = p.processTask(graph)
		case arcStatement:
			e = p.processArc(graph)
		case deadlineStatement:
			e = p.processDeadline(graph)
		default:
			var value uint64
			value, e = p.getNatural()
			if e == nil {
				graph.Attributes[token] = value
			}
		}
		if e != nil {
			return e
		}
	}

	p.content.Graphs = append(p.content.Graphs, graph)
	return nil
}

// TASK t0_0 TYPE 2
func (p *Parser) processTask(graph *Graph) error {
	id, e := p.getID()
	if e == nil {
		e = p.skipStr("TYPE")
	}
	var kind uint64
	if e == nil {
		kind, e = p.getNatural()
	}
	if e != nil {
		return e
	}

	graph.Tasks = append(graph.Tasks, NewTask(id, kind))
	return nil
}

// ARC a0_0 FROM t0_0 TO t0_1 TYPE 0
func (p *Parser) processArc(graph *Graph) error {
	var from, to, kind uint64
	id, e := p.getID()
	if e == nil {
		e = p.skipStr("FROM")
	}
	if e == nil {
		from, e = p.getID()
	}
	if e == nil {
		e = p.skipStr("TO")
	}
	if e == nil {
		to, e = p.getID()
	}
	if e == nil {
		e = p.skipStr("TYPE")
	}
	if e == nil {
		kind, e = p.getNatural()
	}
	if e != nil {
		return e
	}

	graph.Arcs = append(graph.Arcs, NewArc(id, from, to, kind))
	return nil
}

// HARD_DEADLINE d0_0 ON t0_1 AT 590
func (p *Parser) processDeadline(graph *Graph) error {
	var on, at uint64
	id, e := p.getID()
	if e == nil {
		e = p.skipStr("ON")
	}
	if e == nil {
		on, e = p.getID()
	}
	if e == nil {
		e = p.skipStr("AT")
	}
	if e == nil {
		at, e = p.getNatural()
	}
	if e != nil {
		return e
	}

	graph.Deadlines = append(graph.Deadlines, NewDeadline(id, on, at))
	return nil
}

// Table body is a header line with attribute names, a line with attribute values,
// a comment line, a header line with column names, and data rows.
// Both header lines may be empty, data rows require at least one column.
// Data is stored row by row, columns are filled in order.
func (p *Parser) processTable(name string, id uint64) error {
	table := NewTable(name, id)

	if e := p.skipChar('#'); e != nil {
		return e
	}
	for _, n := range p.readTokens() {
		value, e := p.getReal()
		if e != nil {
			return e
		}
		table.Attributes[n] = value
	}

	if e := p.skipComment(); e != nil {
		return e
	}
	if e := p.skipChar('#'); e != nil {
		return e
	}

	for _, n := range p.readTokens() {
		table.Columns = append(table.Columns, NewColumn(n))
	}
	if len(table.Columns) == 0 && !p.atBlockEnd() {
		return p.errorf("expected a token")
	}

	for !p.atBlockEnd() {
		for _, column := range table.Columns {
			value, e := p.getReal()
			if e != nil {
				return e
			}
			column.Data = append(column.Data, value)
		}
	}

	p.content.Tables = append(p.content.Tables, table)
	return nil
}

func (p *Parser) atBlockEnd() bool {
	r, ok := p.cursor.Peek()
	return !ok || r == '}'
}

func (p *Parser) errorf(msg string, params ...any) error {
	return FormatError(p.cursor.Line(), msg, params...)
}
