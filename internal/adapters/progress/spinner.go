package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// SpinnerSink reports deployment progress with a spinner while transactions are pending
type SpinnerSink struct {
	out       io.Writer
	spinner   *spinner.Spinner
	stepStart time.Time
}

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return NewSpinnerSinkTo(os.Stderr)
}

// NewSpinnerSinkTo creates a spinner sink writing to out
func NewSpinnerSinkTo(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	switch event.Stage {
	case usecase.StageStepStarting:
		r.stop()
		r.stepStart = time.Now()
		color.New(color.FgWhite, color.Bold).Fprintf(r.out, "● %s\n", event.Message)
		return
	case usecase.StageStepCompleted:
		r.stop()
		duration := time.Since(r.stepStart).Round(time.Millisecond)
		color.New(color.FgGreen).Fprintf(r.out, "✓ %s (%s)\n", event.Message, duration)
		return
	case usecase.StageReused:
		r.stop()
		color.New(color.FgWhite, color.Faint).Fprintf(r.out, "  ⊘ %s\n", event.Message)
		return
	case usecase.StageDeployed:
		r.stop()
		color.New(color.FgGreen).Fprintf(r.out, "  ✓ %s\n", event.Message)
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else {
		r.stop()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

// printPaused stops the spinner around a message
func (r *SpinnerSink) printPaused(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	fmt.Fprintln(r.out, c.Sprint(message))

	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerSink) stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
