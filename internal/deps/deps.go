// Package deps reports whether the external media tools proteus drives are
// installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"proteus/internal/services"
)

// InstallHint tells users how to obtain the media tools.
const InstallHint = "Install with: brew install ffmpeg"

// Requirement defines an external binary proteus relies on.
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
	// Path is the resolved executable when Available.
	Path   string
	Detail string
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

// Require fails with services.ErrToolNotFound unless command resolves to an
// executable. It returns the resolved path.
func Require(name, command string) (string, error) {
	status := CheckBinaries([]Requirement{{Name: name, Command: command}})[0]
	if !status.Available {
		return "", services.Wrap(services.ErrToolNotFound, "", name+". "+InstallHint, nil)
	}
	return status.Path, nil
}
