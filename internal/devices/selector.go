package devices

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"VDOStats/internal/pkg/logger"
)

// EnumerationError reports that the device discovery mechanism itself
// failed. It is always fatal for the run.
type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("cannot enumerate dedup volumes: %v", e.Err)
}

func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// runCommand is a variable so tests can stub the external enumerator.
var runCommand = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Enumerator discovers active dedup-target devices by invoking an
// external listing command and mapping each reported name to a device
// node path.
type Enumerator struct {
	// Command is the listing invocation, e.g. dmsetup ls --target vdo.
	Command []string
	// DeviceDir is the directory device names resolve under,
	// e.g. /dev/mapper.
	DeviceDir string
}

// NewEnumerator creates an enumerator for the given command and device
// node directory.
func NewEnumerator(command []string, deviceDir string) *Enumerator {
	return &Enumerator{Command: command, DeviceDir: deviceDir}
}

// ListActive runs the listing command and returns the device paths that
// currently exist. The first whitespace-delimited token of each
// non-empty output line is taken as a device name; names whose node is
// missing are skipped silently, since a device may disappear between
// listing and sampling.
func (e *Enumerator) ListActive() ([]string, error) {
	if len(e.Command) == 0 {
		return nil, &EnumerationError{Err: fmt.Errorf("no enumerator command configured")}
	}

	out, err := runCommand(e.Command[0], e.Command[1:]...)
	if err != nil {
		return nil, &EnumerationError{Err: err}
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		path := filepath.Join(e.DeviceDir, tokens[0])
		if _, err := os.Stat(path); err != nil {
			logger.Debug("skipping listed device without a node",
				logger.String("path", path))
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Select decides the device set to sample. An explicit, non-empty list
// is returned verbatim and must later validate as genuine volumes;
// otherwise the enumerator's discoveries are used and a device that
// fails to sample is tolerated.
func Select(explicit []string, enum *Enumerator) (devices []string, mustValidate bool, err error) {
	if len(explicit) > 0 {
		return explicit, true, nil
	}
	devices, err = enum.ListActive()
	if err != nil {
		return nil, false, err
	}
	return devices, false, nil
}
