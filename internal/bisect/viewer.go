package bisect

import (
	"fmt"
	"os/exec"
	"strings"
)

// Viewer surfaces a frame to the user. Implementations are best-effort; a
// display failure never terminates the session.
type Viewer interface {
	Display(path string) error
}

// execCommand is swappable for tests.
var execCommand = exec.Command

// CommandViewer launches an external viewer program with the image path as the
// final argument. The command string may carry leading arguments, e.g.
// "open -g" or "feh --scale-down".
type CommandViewer struct {
	Command string
}

// Display runs the viewer and waits for it to exit. Viewers like macOS `open`
// return immediately after handing the file to the display application.
func (v CommandViewer) Display(path string) error {
	fields := strings.Fields(v.Command)
	if len(fields) == 0 {
		return fmt.Errorf("viewer command is empty")
	}
	args := append(fields[1:], path)
	cmd := execCommand(fields[0], args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("viewer %s: %w", fields[0], err)
	}
	return nil
}
