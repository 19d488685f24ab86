package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"batchresize/internal/log"
	"batchresize/internal/processor"
	"batchresize/internal/tui"
)

// startReporter consumes updates until the channel is closed. With progress
// on, a bubbletea program renders the live view and prints each message
// above it; otherwise messages go straight to out. The returned channel is
// closed once every update has been handled.
func startReporter(out io.Writer, updates <-chan processor.ProgressUpdate, progress bool) <-chan struct{} {
	done := make(chan struct{})

	if progress {
		// no input: the terminal stays cooked so Ctrl-C reaches the signal context
		program := tea.NewProgram(tui.NewModel(updates), tea.WithOutput(out), tea.WithInput(nil))
		go func() {
			defer close(done)
			if _, err := program.Run(); err != nil {
				log.Debugw("progress view stopped", "err", err)
			}
			// the program may quit early on interrupt; Run must never block on send
			for range updates {
			}
		}()
		return done
	}

	go func() {
		defer close(done)
		for u := range updates {
			if u.Line != "" {
				fmt.Fprintln(out, u.Line)
			}
		}
	}()
	return done
}

func renderSummary(s processor.Summary) string {
	return tui.RenderSummary([]tui.SummaryRow{
		{Label: "Processed", Value: fmt.Sprintf("%d", s.Processed)},
		{Label: "Skipped (exists)", Value: fmt.Sprintf("%d", s.Skipped)},
		{Label: "Failed", Value: fmt.Sprintf("%d", s.Failed)},
		{Label: "Output", Value: s.OutputDir},
	})
}
