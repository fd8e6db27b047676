package shell

import (
	"fmt"
	"io"
	"strings"

	"kopadb/executor"
	"kopadb/storage"
)

// render writes res to w: a grid for row results, the message otherwise.
func render(w io.Writer, res *executor.Result) {
	if res.Columns == nil {
		fmt.Fprintln(w, res.Message)
		return
	}
	fmt.Fprint(w, formatGrid(res.Columns, res.Rows))
}

// formatGrid lays rows out as left-aligned columns separated by " | " with a
// dashed rule under the header. No rows gives "No results.".
func formatGrid(columns []string, rows []*storage.Row) string {
	if len(rows) == 0 {
		return "No results.\n"
	}

	widths := make([]int, len(columns))
	cells := make([][]string, len(rows))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i, c := range columns {
			s := row.Value(c).String()
			cells[r][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	var sb strings.Builder
	writeLine := func(values []string) {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, " | "), " "))
		sb.WriteByte('\n')
	}

	writeLine(columns)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	sb.WriteString(strings.Join(rule, "-+-"))
	sb.WriteByte('\n')
	for _, line := range cells {
		writeLine(line)
	}
	return sb.String()
}
