// strings deals with text representation of query results

package relq

import (
	"bytes"
	"fmt"
	"reflect"
	"text/tabwriter"

	"github.com/jonlawlor/relq/kp"
)

// Table formats records as a text table with one column per field and a
// heading of field names.  Records which are not structs are shown in a
// single column called Value.
func Table[R any](rows []R) string {
	refs := make([]*R, len(rows))
	for i := range rows {
		refs[i] = &rows[i]
	}
	return TableOf(refs)
}

// TableOf is Table for a slice of record references, as returned by
// Query.All.  Nil references are skipped.
func TableOf[R any](refs []*R) string {
	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)
	w := tabwriter.NewWriter(s, 0, 0, 2, ' ', 0)

	names := kp.FieldNames[R]()
	isStruct := names != nil

	// heading
	if isStruct {
		for i, name := range names {
			writeCell(w, i, string(name))
		}
	} else {
		writeCell(w, 0, "Value")
	}
	fmt.Fprintln(w)

	// body
	for _, r := range refs {
		if r == nil {
			continue
		}
		rr := reflect.ValueOf(r).Elem()
		if !isStruct {
			writeCell(w, 0, fmt.Sprintf("%v", rr))
			fmt.Fprintln(w)
			continue
		}
		for i := 0; i < rr.NumField(); i++ {
			writeCell(w, i, formatField(rr.Field(i)))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	return s.String()
}

// writeCell writes a cell, separated from the previous one by a tab.  The
// last cell of a line is not tab terminated so that no padding trails it.
func writeCell(w *tabwriter.Writer, i int, s string) {
	if i > 0 {
		fmt.Fprint(w, "\t")
	}
	fmt.Fprint(w, s)
}

func formatField(f reflect.Value) string {
	switch f.Kind() {
	case reflect.String:
		return f.String()
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%g", f.Float())
	case reflect.Pointer:
		if f.IsNil() {
			return "-"
		}
		return formatField(f.Elem())
	default:
		if !f.CanInterface() {
			return "?"
		}
		return fmt.Sprintf("%v", f.Interface())
	}
}
