package dialect

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"killports/internal/runner"

	"github.com/rs/zerolog"
)

type windows struct {
	run runner.Runner
	log zerolog.Logger
}

// netstatListeningPattern matches one `netstat -ano` row:
//
//	Proto  Local Address   Foreign Address  State      PID
//	TCP    0.0.0.0:4000    0.0.0.0:0        LISTENING  8821
//
// The local address must end in exactly ":<port>" and the state column must be
// LISTENING. The trailing PID column is captured.
func netstatListeningPattern(port int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^\s*TCP\s+\S*:%d\s+\S+\s+LISTENING\s+(\d+)\s*$`, port))
}

func (w *windows) ResolvePID(port int) (int, bool) {
	out, err := w.run.Output("netstat", "-ano")
	if err != nil {
		return 0, false
	}
	pid, ok := parseNetstatANO(out, port)
	if !ok {
		w.log.Debug().Int("port", port).Msg("no LISTENING row in netstat output")
	}
	return pid, ok
}

// parseNetstatANO returns the PID of the first LISTENING row for port.
func parseNetstatANO(out string, port int) (int, bool) {
	re := netstatListeningPattern(port)
	for _, line := range lines(out) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if pid, err := strconv.Atoi(m[1]); err == nil && pid > 0 {
			return pid, true
		}
	}
	return 0, false
}

func (w *windows) ProcessName(pid int) string {
	out, err := w.run.Output("tasklist", "/FI", fmt.Sprintf("PID eq %d", pid), "/FO", "CSV", "/NH")
	if err != nil {
		return UnknownName
	}
	return parseTasklistCSV(out, pid)
}

// parseTasklistCSV reads `tasklist /FO CSV /NH` rows
// ("node.exe","8821","Console","1","45,000 K") and returns the image name of
// the row whose PID column matches. tasklist prints an "INFO:" line instead of
// CSV when nothing matches the filter.
func parseTasklistCSV(out string, pid int) string {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(out)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return UnknownName
	}
	want := strconv.Itoa(pid)
	for _, rec := range records {
		if len(rec) < 2 || strings.TrimSpace(rec[1]) != want {
			continue
		}
		if name := strings.Trim(strings.TrimSpace(rec[0]), `"`); name != "" {
			return name
		}
	}
	return UnknownName
}

func (w *windows) Terminate(pid int) bool {
	_, err := w.run.Output("taskkill", "/PID", strconv.Itoa(pid), "/F")
	return err == nil
}
