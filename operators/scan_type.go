package operators

import "fmt"

// ScanType is the comparison a table scan applies between a column's
// values and a constant search value.
type ScanType int

const (
	OpEquals ScanType = iota
	OpNotEquals
	OpLessThan
	OpLessThanEquals
	OpGreaterThan
	OpGreaterThanEquals
)

func (s ScanType) String() string {
	switch s {
	case OpEquals:
		return "="
	case OpNotEquals:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessThanEquals:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanEquals:
		return ">="
	default:
		return fmt.Sprintf("ScanType(%d)", int(s))
	}
}
