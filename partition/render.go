package partition

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// renderWidth is the fixed, right-aligned width of every rendered column.
const renderWidth = 15

// Render writes a human-readable view of a filled table to w.
//
// Layout (each column right-aligned to 15 characters):
//
//	<caption>
//	               {}           {1}         {1,2}       {1,2,5}
//	          sum=0          true          true          true          true
//	          sum=1         false          true          true          true
//	...
//
// The header lists the element prefix each column makes available.
// Render only reads t; it is a debugging aid and plays no part in the
// computation. The whole view is written with a single Write call.
func Render(w io.Writer, t *Table, caption string) error {
	if t == nil {
		return ErrNilTable
	}

	var sb strings.Builder
	sb.WriteString(caption)
	sb.WriteByte('\n')

	// header: blank corner, then growing prefixes {} {x1} {x1,x2} ...
	fmt.Fprintf(&sb, "%*s", renderWidth, "")
	prefix := "{"
	for j := 0; j < t.cols; j++ {
		if j == 1 {
			prefix += strconv.Itoa(t.elements[0])
		}
		if j > 1 {
			prefix += "," + strconv.Itoa(t.elements[j-1])
		}
		fmt.Fprintf(&sb, "%*s", renderWidth, prefix+"}")
	}

	for s := 0; s < t.rows; s++ {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%*s", renderWidth, "sum="+strconv.Itoa(s))
		for j := 0; j < t.cols; j++ {
			fmt.Fprintf(&sb, "%*s", renderWidth, strconv.FormatBool(t.at(s, j)))
		}
	}
	sb.WriteString("\n\n")

	_, err := io.WriteString(w, sb.String())

	return err
}
