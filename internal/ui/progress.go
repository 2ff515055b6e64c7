package ui

import (
	"context"
	"io"
	"time"

	"github.com/cheggaaa/pb/v3"
)

const (
	progressSteps    = 20
	progressTemplate = `{{string . "prefix"}} {{bar . "[" "=" ">" " " "]"}} {{percent .}}`
)

// Computing runs fn while a progress bar fills over the expected duration d.
// The bar is completed when fn succeeds and left where it stopped otherwise.
func Computing(ctx context.Context, w io.Writer, d time.Duration, fn func(context.Context) error) error {
	if d <= 0 {
		return fn(ctx)
	}

	bar := pb.New(progressSteps).
		SetWriter(w).
		SetTemplateString(progressTemplate).
		Set("prefix", "Computing")
	bar.Start()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	interval := d / progressSteps
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			if err == nil {
				bar.SetCurrent(progressSteps)
			}
			bar.Finish()
			return err
		case <-ticker.C:
			// hold the last step until fn returns
			if bar.Current() < progressSteps-1 {
				bar.Increment()
			}
		}
	}
}
