package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureHandler_SharesStoreAcrossWithAttrs(t *testing.T) {
	logger, h := NewTestLogger(nil)
	component := logger.With(slog.String("component", "summarizer"))

	logger.Info("first")
	component.Warn("second", slog.Int("rows", 3))

	records := h.Records()
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Attrs)
	assert.Equal(t, "summarizer", records[1].Attrs["component"])
	assert.Equal(t, int64(3), records[1].Attrs["rows"])

	r, ok := h.Find("sec")
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, r.Level)

	_, ok = h.Find("third")
	assert.False(t, ok)

	AssertLogContains(t, h, slog.LevelInfo, "first")
	AssertNoErrors(t, h)
}

func TestWriteDataset(t *testing.T) {
	path := WriteDataset(t, t.TempDir(), "sample.csv", SampleDataset)
	assert.FileExists(t, path)
}
