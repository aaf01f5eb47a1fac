package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout swaps both os.Stdout and color.Output: fatih/color writes
// through its own writer, plain fmt through os.Stdout.
func captureStdout(f func()) string {
	old := os.Stdout
	oldColor := color.Output
	r, w, _ := os.Pipe()
	os.Stdout = w
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = oldColor

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := captureStdout(func() {
		Success("Wrote %s", "larkrelay.yaml")
	})

	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Wrote larkrelay.yaml")
}

func TestError(t *testing.T) {
	out := captureStderr(func() {
		Error("Failed to reach %s", "http://localhost:3000")
	})

	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Failed to reach http://localhost:3000")
}

func TestInfo(t *testing.T) {
	out := captureStdout(func() {
		Info("Sending %d of %d events", 5, 10)
	})

	assert.Contains(t, out, "Sending 5 of 10 events")
	assert.NotContains(t, out, "✓")
	assert.NotContains(t, out, "✗")
}

func TestWarn(t *testing.T) {
	out := captureStdout(func() {
		Warn("Event skipped")
	})

	assert.Contains(t, out, "⚠")
	assert.Contains(t, out, "Event skipped")
}

func TestJSON(t *testing.T) {
	data := map[string]interface{}{
		"action": "update",
		"count":  42,
	}

	out := captureStdout(func() {
		assert.NoError(t, JSON(data))
	})

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "update", parsed["action"])
	assert.Equal(t, float64(42), parsed["count"])

	// Indented for humans
	assert.Contains(t, out, "  \"action\":")
}

func TestTable_Render(t *testing.T) {
	table := NewTable([]string{"ACTION", "ID", "TITLE"})
	table.AddRow([]string{"create", "ENG-101", "Fix login"})
	table.AddRow([]string{"update", "OPS-7", "Rotate keys"})

	out := captureStdout(func() {
		table.Render()
	})

	assert.Contains(t, out, "ACTION")
	assert.Contains(t, out, "----")
	assert.Contains(t, out, "ENG-101")
	assert.Contains(t, out, "Rotate keys")
}

func TestTable_Render_ColumnWidths(t *testing.T) {
	table := NewTable([]string{"ID", "STATE"})
	table.AddRow([]string{"1", "Backlog"})
	table.AddRow([]string{"ENG-1234", "Done"})

	out := captureStdout(func() {
		table.Render()
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	// Widest cell sets the column width, so every row aligns
	assert.Contains(t, lines[1], strings.Repeat("-", len("ENG-1234")))
	assert.Contains(t, lines[3], "ENG-1234")
}

func TestTable_Render_Empty(t *testing.T) {
	table := NewTable([]string{"NAME", "STATUS"})

	out := captureStdout(func() {
		table.Render()
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "----")
}
