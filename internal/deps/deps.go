package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"captionkit/internal/config"
)

// Requirement defines an external binary captionkit may call.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Path        string `json:"path,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// Requirements lists the binaries named by cfg. Neither is needed to compile
// captions: ffprobe sizes the canvas from --video and ffmpeg renders the
// result.
func Requirements(cfg *config.Config) []Requirement {
	ffprobe, ffmpeg := "ffprobe", "ffmpeg"
	if cfg != nil {
		ffprobe = cfg.FFprobeBinary()
		ffmpeg = cfg.FFmpegBinary()
	}
	return []Requirement{
		{Name: "FFprobe", Command: ffprobe, Description: "Reads video dimensions for --video", Optional: true},
		{Name: "FFmpeg", Command: ffmpeg, Description: "Burns the .ass file into video (subtitles filter)", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// MissingRequired reports whether any non-optional dependency is unavailable.
func MissingRequired(statuses []Status) bool {
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			return true
		}
	}
	return false
}
