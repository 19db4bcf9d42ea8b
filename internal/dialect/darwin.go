package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

type darwin struct {
	unix
}

// ResolvePID asks lsof for the PIDs holding a TCP listener on port, one per
// line, and takes the first. lsof exits 1 when nothing matches.
func (d *darwin) ResolvePID(port int) (int, bool) {
	out, err := d.run.Output("lsof", "-ti", fmt.Sprintf("tcp:%d", port), "-sTCP:LISTEN")
	if err != nil {
		return 0, false
	}
	pid, ok := parseLsofPIDs(out)
	if !ok {
		d.log.Debug().Int("port", port).Str("output", out).Msg("unexpected lsof output")
	}
	return pid, ok
}

// parseLsofPIDs parses the first line of `lsof -t` output as a PID.
func parseLsofPIDs(out string) (int, bool) {
	first := strings.TrimSpace(lines(strings.TrimSpace(out))[0])
	if first == "" {
		return 0, false
	}
	pid, err := strconv.Atoi(first)
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
