// Package deps reports the availability of external binaries shuttercheck
// can use.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the binaries shuttercheck looks for. exiftool is
// optional: without it the native EXIF reader takes over, with reduced
// MakerNote coverage.
func Requirements(exiftoolBinary string) []Requirement {
	command := strings.TrimSpace(exiftoolBinary)
	if command == "" {
		command = "exiftool"
	}
	return []Requirement{
		{
			Name:        "ExifTool",
			Command:     command,
			Description: "full metadata extraction including vendor MakerNote counters",
			Optional:    true,
		},
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
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
