// Package report renders an engine.Result as the plain-text mapping file
// described in spec §6. It is a thin, single-purpose writer type, mirroring
// the teacher's preference for small dedicated writer types over a
// general-purpose serialization layer.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/RuneBox/symmap/engine"
)

// Writer renders a *engine.Result to the exact text format spec.md §6
// defines: three sections, each a sorted `source -> target` line per
// confirmed mapping, separated by a blank line.
type Writer struct{}

// NewWriter builds a report Writer.
func NewWriter() *Writer { return &Writer{} }

// Write emits the three mapping sections to w, in source-key-ascending
// order within each section (class/method/field full signatures already
// use `/`-separated binary names, so lexicographic string order is
// sufficient for reproducibility).
func (rw *Writer) Write(w io.Writer, result *engine.Result) error {
	bw := bufio.NewWriter(w)

	if err := writeSection(bw, "Class Mappings", result.Classes); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	if err := writeSection(bw, "Method Mappings", result.Methods); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	if err := writeSection(bw, "Field Mappings", result.Fields); err != nil {
		return err
	}

	return bw.Flush()
}

func writeSection(w io.Writer, title string, mapping map[string]string) error {
	if _, err := fmt.Fprintf(w, "## %s\n", title); err != nil {
		return err
	}
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", k, mapping[k]); err != nil {
			return err
		}
	}
	return nil
}
