package texture

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/duskray/raycore/rendererr"
)

var udimPattern = regexp.MustCompile(`map(\d{4})`)

// ParseUDIM parses input strings of the form "map<NNNN>" with N between
// 1001 and 9999 into tile offset (u,v) = ((N-1001) mod 10, (N-1001) div
// 10).
func ParseUDIM(expr string) (u, v int, err error) {
	m := udimPattern.FindStringSubmatch(expr)
	if m == nil {
		return 0, 0, rendererr.NewConfigurationError("texture", nil, "not a UDIM expression: %q", expr)
	}
	n, _ := strconv.Atoi(m[1])
	if n < 1001 || n > 9999 {
		return 0, 0, rendererr.NewConfigurationError("texture", nil, "UDIM tile %d out of range [1001,9999]", n)
	}
	offset := n - 1001
	return offset % 10, offset / 10, nil
}

// FormatUDIM is the inverse of ParseUDIM: N = 1001 + u + 10*v.
func FormatUDIM(u, v int) string {
	return fmt.Sprintf("map%04d", 1001+u+10*v)
}
