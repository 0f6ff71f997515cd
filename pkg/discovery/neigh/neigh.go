package neigh

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	osutils "github.com/projectdiscovery/utils/os"

	"github.com/mickeyl/lanagent/pkg/types"
)

const readTimeout = 5 * time.Second

// Reader dumps the OS neighbor table and parses it into devices.
type Reader struct {
	command []string
	parser  Parser
}

// NewReader selects the neighbor-table command and parser for the
// running OS.
func NewReader() *Reader {
	if osutils.IsOSX() {
		return &Reader{command: []string{"arp", "-a"}, parser: arpParser{}}
	}
	return &Reader{command: []string{"ip", "neigh", "show"}, parser: ipNeighParser{}}
}

// Read invokes the neighbor-table command with a bounded timeout and
// parses its output. Command failure is returned to the caller; the
// surrounding scan cycle treats it as "no result" rather than fatal.
func (r *Reader) Read(ctx context.Context) ([]types.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", strings.Join(r.command, " "), err)
	}

	var devices []types.Device
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if device, ok := r.parser.ParseLine(line); ok {
			devices = append(devices, device)
		}
	}
	return devices, scanner.Err()
}
