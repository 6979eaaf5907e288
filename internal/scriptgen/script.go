// Package scriptgen renders the bash script that drives a dockerized ffmpeg
// over a sorted frame list. The script is self-contained: it writes the
// concat manifest with a heredoc, mounts the working directory plus every
// source directory, and invokes the encode with the configured parameters.
package scriptgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gkwa/wackywolffish/internal/fileutil"
	"github.com/gkwa/wackywolffish/internal/frameset"
)

// mountPoint is where source frame directories land inside the container.
const mountPoint = "/input"

// Params carries everything the rendered script embeds.
type Params struct {
	Frames        []frameset.Frame
	FPS           int
	Scale         string
	Preset        string
	CRF           int
	Output        string
	DockerImage   string
	ContainerName string
}

// Render produces the script body.
func Render(p Params) (string, error) {
	if len(p.Frames) == 0 {
		return "", errors.New("no frames to script")
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("# Generated ffmpeg script\n\n")

	b.WriteString("# Create manifest file\n")
	b.WriteString("cat > ffmpeg_list.txt << 'EOF'\n")
	for _, frame := range p.Frames {
		fmt.Fprintf(&b, "file %s\n", FormatPath(mountPoint+"/"+frame.Name()))
	}
	b.WriteString("EOF\n\n")

	b.WriteString("# Run ffmpeg in docker\n")
	fmt.Fprintf(&b, "docker run --rm --name %s \\\n", p.ContainerName)
	fmt.Fprintf(&b, "-v %s:/workspace \\\n", FormatPath("$(pwd)"))
	for _, dir := range frameset.MountDirs(p.Frames) {
		fmt.Fprintf(&b, "-v %s:%s \\\n", FormatPath(dir), mountPoint)
	}
	fmt.Fprintf(&b, "%s \\\n", p.DockerImage)
	b.WriteString("-y \\\n")
	b.WriteString("-f concat \\\n")
	b.WriteString("-safe 0 \\\n")
	b.WriteString("-i /workspace/ffmpeg_list.txt \\\n")
	fmt.Fprintf(&b, "-r %d \\\n", p.FPS)
	fmt.Fprintf(&b, "-vf scale=%s \\\n", p.Scale)
	b.WriteString("-c:v libx264 \\\n")
	fmt.Fprintf(&b, "-preset %s \\\n", p.Preset)
	fmt.Fprintf(&b, "-crf %d \\\n", p.CRF)
	b.WriteString("-pix_fmt yuv420p \\\n")
	fmt.Fprintf(&b, "/workspace/%s\n", p.Output)

	return b.String(), nil
}

// Write renders the script and installs it executable at path.
func Write(path string, p Params) error {
	body, err := Render(p)
	if err != nil {
		return err
	}
	if err := fileutil.WriteExecutable(path, []byte(body)); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}
