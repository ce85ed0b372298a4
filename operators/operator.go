// Package operators holds the abstract operator contract and the table
// scan, the one operator this module implements in full.
package operators

import (
	"context"

	"github.com/dolthub/colstore/storage"
)

// Operator is the abstract contract every operator implements: hold 0-2
// input operators, and produce a table when executed. Execute runs
// synchronously on the caller's goroutine and returns when the output
// table is ready; there is no suspension point inside it, and no
// memoization is required of implementations (spec.md §4.6).
type Operator interface {
	Execute(ctx context.Context) (*storage.Table, error)
}

// baseOperator is embedded by every concrete operator to carry its input
// operators, mirroring the reference design's AbstractOperator base class.
type baseOperator struct {
	inputs []Operator
}

// Inputs returns the operator's input operators, in order.
func (b *baseOperator) Inputs() []Operator { return b.inputs }
