package dialect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ssPIDPattern = regexp.MustCompile(`\bpid=(\d+)`)

type linux struct {
	unix
}

// ResolvePID tries ss first. netstat is consulted only when ss itself fails
// (missing binary or non-zero exit); a clean ss run with no match is final.
func (l *linux) ResolvePID(port int) (int, bool) {
	out, err := l.run.Output("ss", "-lptn", fmt.Sprintf("sport = :%d", port))
	if err == nil {
		return parseSS(out, port)
	}
	l.log.Debug().Err(err).Int("port", port).Msg("ss failed, falling back to netstat")

	out, err = l.run.Output("netstat", "-tlnp")
	if err != nil {
		return 0, false
	}
	return parseNetstatTLNP(out, port)
}

// parseSS scans `ss -lptn` rows such as
//
//	LISTEN 0 511 0.0.0.0:3000 0.0.0.0:* users:(("node",pid=1234,fd=20))
//
// and returns the pid= value of the first row mentioning ":<port>".
func parseSS(out string, port int) (int, bool) {
	portRe := regexp.MustCompile(fmt.Sprintf(`:%d\b`, port))
	for _, line := range lines(out) {
		if !portRe.MatchString(line) {
			continue
		}
		m := ssPIDPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if pid, err := strconv.Atoi(m[1]); err == nil && pid > 0 {
			return pid, true
		}
	}
	return 0, false
}

// netstatTLNPPattern matches one `netstat -tlnp` row:
//
//	Proto Recv-Q Send-Q Local Address  Foreign Address  State   PID/Program name
//	tcp        0      0 0.0.0.0:3000   0.0.0.0:*        LISTEN  1234/node
//
// The last column is "<pid>/<program>", or "-" when the socket belongs to
// another user and netstat runs unprivileged. A bare trailing PID is accepted
// as well.
func netstatTLNPPattern(port int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^\s*tcp6?\s+\d+\s+\d+\s+\S*:%d\s+\S+\s+LISTEN\s+(\d+)(?:/.*)?$`, port))
}

func parseNetstatTLNP(out string, port int) (int, bool) {
	re := netstatTLNPPattern(port)
	for _, line := range lines(out) {
		m := re.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		if pid, err := strconv.Atoi(m[1]); err == nil && pid > 0 {
			return pid, true
		}
	}
	return 0, false
}
