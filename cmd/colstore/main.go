// Command colstore is a minimal demo harness: it builds a table, loads a
// few rows, compresses a chunk, and runs a scan end to end. It exists to
// exercise the storage/operators/catalog packages together; it carries no
// parsing or REPL sophistication of its own (spec.md places the CLI and
// test harness out of scope, as an external collaborator).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/colstore/catalog"
	"github.com/dolthub/colstore/operators"
	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

type leafOperator struct {
	table *storage.Table
}

func (o *leafOperator) Execute(context.Context) (*storage.Table, error) { return o.table, nil }

func main() {
	logger := logrus.New()
	runID := uuid.NewString()
	logger.WithField("run_id", runID).Info("starting demo run")

	cat := catalog.New(catalog.WithLogger(logger))

	tbl := storage.NewTable(2)
	if err := tbl.AddColumn("a", types.TagInt); err != nil {
		logger.WithError(err).Fatal("add column")
	}
	if err := tbl.AddColumn("b", types.TagString); err != nil {
		logger.WithError(err).Fatal("add column")
	}

	rows := []struct {
		a int32
		b string
	}{{1, "x"}, {2, "y"}, {3, "x"}, {4, "y"}}
	for _, r := range rows {
		if err := tbl.Append([]types.Value{types.NewInt(r.a), types.NewString(r.b)}); err != nil {
			logger.WithError(err).Fatal("append row")
		}
	}

	if err := tbl.CompressChunk(0); err != nil {
		logger.WithError(err).Fatal("compress chunk 0")
	}

	if err := cat.AddTable("demo", tbl); err != nil {
		logger.WithError(err).Fatal("add table to catalog")
	}

	input, err := cat.GetTable("demo")
	if err != nil {
		logger.WithError(err).Fatal("get table")
	}

	scan := operators.NewTableScan(&leafOperator{input}, 1, operators.OpEquals, types.NewString("x"))
	out, err := scan.Execute(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("execute scan")
	}

	fmt.Printf("scanned %d rows matching b = \"x\"\n", out.RowCount())
	os.Exit(0)
}
