package bisect_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gkwa/wackywolffish/internal/bisect"
)

type recordingViewer struct {
	displayed []string
	err       error
}

func (v *recordingViewer) Display(path string) error {
	v.displayed = append(v.displayed, path)
	return v.err
}

func runLoop(t *testing.T, n int, viewer bisect.Viewer, input string) (string, string) {
	t.Helper()
	session, err := bisect.NewSession(catalog(t, n))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	var out, errOut bytes.Buffer
	loop := bisect.NewLoop(session, viewer, &out, &errOut, nil)
	if err := loop.Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), errOut.String()
}

func TestLoopStartupSurfacesMiddleFrame(t *testing.T) {
	viewer := &recordingViewer{}
	out, _ := runLoop(t, 7, viewer, "q\n")

	if !strings.Contains(out, "Loaded 7 images") {
		t.Fatalf("missing banner: %q", out)
	}
	if !strings.Contains(out, "Range: [0, 6], Current: 3") {
		t.Fatalf("missing initial range: %q", out)
	}
	if !strings.Contains(out, "[4/7]") {
		t.Fatalf("missing 1-based position: %q", out)
	}
	if len(viewer.displayed) != 1 || !strings.Contains(viewer.displayed[0], "AATP0004") {
		t.Fatalf("unexpected displays: %v", viewer.displayed)
	}
}

func TestLoopNarrowAndUndoSequence(t *testing.T) {
	viewer := &recordingViewer{}
	out, errOut := runLoop(t, 7, viewer, "n\np\nr\nr 1\nr\nq\n")

	if !strings.Contains(out, "Range: [4, 6], Current: 5") {
		t.Fatalf("missing post-n range: %q", out)
	}
	if !strings.Contains(out, "Range: [4, 4], Current: 4") {
		t.Fatalf("missing post-p range: %q", out)
	}
	if strings.Count(out, "Undid 1 move(s)") != 2 {
		t.Fatalf("expected two successful undos: %q", out)
	}
	if !strings.Contains(errOut, "only 0 in history") {
		t.Fatalf("third undo should report empty history: %q", errOut)
	}
}

func TestLoopEndOfInputQuitsCleanly(t *testing.T) {
	out, errOut := runLoop(t, 3, &recordingViewer{}, "n\n")
	if !strings.Contains(out, "Loaded 3 images") {
		t.Fatalf("missing banner: %q", out)
	}
	if strings.Contains(errOut, "Unknown") {
		t.Fatalf("unexpected error output: %q", errOut)
	}
}

func TestLoopExhaustedNarrowGoesToErrStream(t *testing.T) {
	_, errOut := runLoop(t, 1, &recordingViewer{}, "n\np\nq\n")
	if strings.Count(errOut, "Cannot bisect further") != 2 {
		t.Fatalf("expected two exhaustion notices: %q", errOut)
	}
}

func TestLoopRejectsMalformedUndoCount(t *testing.T) {
	viewer := &recordingViewer{}
	session := mustSession(t, 7)
	var out, errOut bytes.Buffer
	loop := bisect.NewLoop(session, viewer, &out, &errOut, nil)

	if err := loop.Run(strings.NewReader("r abc\nq\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(errOut.String(), "Invalid undo count") {
		t.Fatalf("missing rejection: %q", errOut.String())
	}
	if session.State() != (bisect.State{Low: 0, High: 6, Current: 3}) {
		t.Fatalf("state changed by malformed undo: %+v", session.State())
	}
	if session.HistoryDepth() != 0 {
		t.Fatalf("history changed by malformed undo: %d", session.HistoryDepth())
	}
}

func TestLoopUnknownCommandKeepsState(t *testing.T) {
	session := mustSession(t, 7)
	var out, errOut bytes.Buffer
	loop := bisect.NewLoop(session, &recordingViewer{}, &out, &errOut, nil)
	if err := loop.Run(strings.NewReader("x\nq\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(errOut.String(), "Unknown command") {
		t.Fatalf("missing usage error: %q", errOut.String())
	}
	if session.State() != (bisect.State{Low: 0, High: 6, Current: 3}) {
		t.Fatalf("state changed by unknown command: %+v", session.State())
	}
}

func TestLoopViewerFailureIsNonFatal(t *testing.T) {
	viewer := &recordingViewer{err: errors.New("no display")}
	out, errOut := runLoop(t, 7, viewer, "n\nq\n")
	if !strings.Contains(errOut, "Warning: could not display") {
		t.Fatalf("missing warning: %q", errOut)
	}
	if !strings.Contains(out, "Range: [4, 6], Current: 5") {
		t.Fatalf("narrowing should continue past viewer failure: %q", out)
	}
}

func TestLoopCommandsAreCaseInsensitive(t *testing.T) {
	out, _ := runLoop(t, 7, &recordingViewer{}, "N\nQ\n")
	if !strings.Contains(out, "Range: [4, 6], Current: 5") {
		t.Fatalf("uppercase command not accepted: %q", out)
	}
}

func mustSession(t *testing.T, n int) *bisect.Session {
	t.Helper()
	session, err := bisect.NewSession(catalog(t, n))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return session
}
