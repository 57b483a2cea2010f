package database

import "strings"

// setClause collects "column = ?" assignments for a partial UPDATE. Column
// names only ever come from call-site literals; values are bound through
// placeholders, never spliced into the statement text.
type setClause struct {
	assignments []string
	args        []any
}

func (s *setClause) set(column string, value any) {
	s.assignments = append(s.assignments, column+" = ?")
	s.args = append(s.args, value)
}

func (s *setClause) empty() bool {
	return len(s.assignments) == 0
}

func (s *setClause) sql() string {
	return strings.Join(s.assignments, ", ")
}
