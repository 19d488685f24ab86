package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"batchresize/internal/processor"
)

func TestRenderSummary(t *testing.T) {
	out := RenderSummary([]SummaryRow{
		{Label: "Processed", Value: "12"},
		{Label: "Skipped", Value: "3"},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Processed")
	assert.Contains(t, lines[1], "12")
	assert.Contains(t, lines[2], "Skipped")
	assert.Contains(t, lines[0], strings.Repeat("-", len("Processed")+len("12")+3))
}

func TestModelCountsUpdates(t *testing.T) {
	updates := make(chan processor.ProgressUpdate, 4)
	var model tea.Model = NewModel(updates)

	for _, u := range []processor.ProgressUpdate{
		{TotalDelta: 1},
		{ProcessedDelta: 1, Line: "Saved: a.png"},
		{TotalDelta: 1},
		{SkippedDelta: 1, Line: "Skip (exists): b.png"},
	} {
		var cmd tea.Cmd
		model, cmd = model.Update(updateMsg(u))
		assert.NotNil(t, cmd)
	}

	m := model.(Model)
	assert.Equal(t, 2, m.total)
	assert.Equal(t, 1, m.processed)
	assert.Equal(t, 1, m.skipped)
	assert.Contains(t, m.View(), "Files: 2/2")

	close(updates)
	msg := listenForUpdates(updates)()
	_, ok := msg.(doneMsg)
	assert.True(t, ok)

	model, _ = model.Update(msg)
	assert.Empty(t, model.View())
}

func TestRenderBar(t *testing.T) {
	assert.Equal(t, "[     ]", renderBar(5, 0))
	assert.Equal(t, "[==   ]", renderBar(5, 0.4))
	assert.Equal(t, "[=====]", renderBar(5, 2))
}

func TestStyleLineKeepsText(t *testing.T) {
	for _, line := range []string{"Saved: a.png", "Skip (exists): a.png", "Error processing a.png: boom", "other"} {
		assert.Contains(t, StyleLine(line), line)
	}
}
