package cmd

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadDurationSpansWait(t *testing.T) {
	pr, pw := io.Pipe()
	start := time.Now()
	go func() {
		time.Sleep(50 * time.Millisecond)
		_, _ = pw.Write([]byte("\n"))
	}()

	if got := readDuration(pr, start); got < 50*time.Millisecond {
		t.Errorf("duration = %v, want at least 50ms", got)
	}
}

func TestReadDurationReturnsOnEOF(t *testing.T) {
	// Non-interactive input (piped stdin) must not hang the command.
	done := make(chan time.Duration, 1)
	go func() { done <- readDuration(strings.NewReader(""), time.Now()) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("readDuration did not return on closed input")
	}
}
