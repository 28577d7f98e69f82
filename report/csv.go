package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/lvflow/utils"
)

// FlowRow is one max-flow run on a hypercube.
type FlowRow struct {
	Size            int
	MaxFlow         int64
	AugmentingPaths int
	Elapsed         time.Duration
}

// MatchingRow is one matching run on a bipartite network.
type MatchingRow struct {
	Size            int
	Degree          int
	MaxFlow         int64
	AugmentingPaths int
	Matchings       int
	Elapsed         time.Duration
}

// WriteFlowRow writes `size,max_flow,paths,ms`.
func WriteFlowRow(w io.Writer, row FlowRow) error {
	return writeRecord(w, []string{
		strconv.Itoa(row.Size),
		strconv.FormatInt(row.MaxFlow, 10),
		strconv.Itoa(row.AugmentingPaths),
		utils.Millis(row.Elapsed),
	})
}

// WriteMatchingRow writes `size,degree,max_flow,paths,matchings,ms`.
func WriteMatchingRow(w io.Writer, row MatchingRow) error {
	return writeRecord(w, []string{
		strconv.Itoa(row.Size),
		strconv.Itoa(row.Degree),
		strconv.FormatInt(row.MaxFlow, 10),
		strconv.Itoa(row.AugmentingPaths),
		strconv.Itoa(row.Matchings),
		utils.Millis(row.Elapsed),
	})
}

// AppendRow opens path in append mode (creating it if needed), hands it to
// write and closes it. The first error wins.
func AppendRow(path string, write func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("AppendRow: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("AppendRow: %w", cerr)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("AppendRow: %w", err)
	}

	return nil
}

func writeRecord(w io.Writer, record []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}
