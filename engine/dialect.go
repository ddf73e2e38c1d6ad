package engine

import (
	"strings"

	"github.com/thu1977/hddtemp/model"
	"github.com/thu1977/hddtemp/util"
)

// Identification markers. The first line carrying one decides the
// dialect for the whole report.
const (
	markerATA  = "Device Model:"
	markerNVMe = "Model Number:"
	markerSCSI = "Product:"
)

// Classify scans report lines in order and returns the dialect of the
// first identification marker found, plus the device's display name
// taken from the remainder of that line. A marker line with no name
// tokens left on it does not count as a match and scanning continues.
// No marker at all yields DialectUnknown and an empty name; callers
// must not attempt temperature extraction in that case.
func Classify(lines []string) (model.Dialect, string) {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, markerATA):
			if name := util.TextAfterField(line, 1); name != "" {
				return model.DialectATA, name
			}
		case strings.HasPrefix(line, markerNVMe):
			if name := util.TextAfterField(line, 1); name != "" {
				return model.DialectNVMe, name
			}
		case strings.HasPrefix(line, markerSCSI):
			if name := util.TextAfterField(line, 0); name != "" {
				return model.DialectSCSI, name
			}
		}
	}
	return model.DialectUnknown, ""
}
