package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportInputPanic(t *testing.T) {
	var out, errOut bytes.Buffer
	reportInputPanic(&out, &errOut, "poll failed", []byte("goroutine 7 [running]:"))

	if !bytes.Contains(out.Bytes(), csiCursorShow) || !bytes.Contains(out.Bytes(), csiAltScreenExit) {
		t.Errorf("Expected terminal reset sequences on out, got %q", out.String())
	}

	msg := errOut.String()
	if !strings.Contains(msg, "INPUT POLLER CRASHED: poll failed") {
		t.Errorf("Expected panic value in report, got %q", msg)
	}
	if !strings.Contains(msg, "goroutine 7") {
		t.Errorf("Expected stack trace in report, got %q", msg)
	}
}
