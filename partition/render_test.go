package partition_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/halfsum/partition"
)

// row formats cells with the renderer's fixed 15-character columns.
func row(cells ...string) string {
	var sb strings.Builder
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("%15s", c))
	}

	return sb.String()
}

// TestRender_Layout compares the full rendering of [1,2,5].
func TestRender_Layout(t *testing.T) {
	tbl, err := partition.BuildTable([]int{1, 2, 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, partition.Render(&buf, tbl, "filled:"))

	want := strings.Join([]string{
		"filled:",
		row("", "{}", "{1}", "{1,2}", "{1,2,5}"),
		row("sum=0", "true", "true", "true", "true"),
		row("sum=1", "false", "true", "true", "true"),
		row("sum=2", "false", "false", "true", "true"),
		row("sum=3", "false", "false", "true", "true"),
		row("sum=4", "false", "false", "false", "false"),
	}, "\n") + "\n\n"
	assert.Equal(t, want, buf.String())
}

// TestRender_Empty renders the single-cell table of an empty input.
func TestRender_Empty(t *testing.T) {
	tbl, err := partition.BuildTable(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, partition.Render(&buf, tbl, "empty"))
	assert.Equal(t, "empty\n"+row("", "{}")+"\n"+row("sum=0", "true")+"\n\n", buf.String())
}

// TestRender_NilTable ensures nil input is rejected without writing.
func TestRender_NilTable(t *testing.T) {
	var buf bytes.Buffer
	err := partition.Render(&buf, nil, "x")
	assert.ErrorIs(t, err, partition.ErrNilTable)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestRender_WriterError surfaces the writer's error.
func TestRender_WriterError(t *testing.T) {
	tbl, err := partition.BuildTable([]int{1})
	require.NoError(t, err)
	assert.ErrorIs(t, partition.Render(failingWriter{}, tbl, ""), errWrite)
}
