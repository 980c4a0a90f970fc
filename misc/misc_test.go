package misc

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel("warn")
	defer SetLevel("info")

	Debug("Dropped", "a")
	Info("Dropped", "b")
	Warn("Kept", Fields("line", 3, "reason", "bad hex"))
	Error("Kept too", "c")

	out := buf.String()
	require.NotContains(t, out, "Dropped")
	require.Contains(t, out, "WARN ")
	require.Contains(t, out, `line="3" reason="bad hex"`)
	require.Contains(t, out, "ERROR")
}

func TestSetLevelIgnoresUnknown(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("error")
	SetLevel("verbose")
	Warn("Filtered", "x")
	require.Empty(t, buf.String())
	SetLevel("info")
}

func TestFields(t *testing.T) {
	require.Equal(t, `input="0x12" kind="invalid_length"`, Fields("input", "0x12", "kind", "invalid_length"))
	require.Equal(t, `a="1"`, Fields("a", 1, "dangling"))
	require.Empty(t, Fields())
	require.Equal(t, `input="0x\"12" line="7"`, Fields("input", `0x"12`, "line", 7))
	require.Equal(t, `reason="bad\nline"`, Fields("reason", "bad\nline"))
}
