// nexcomm/utils.go
package nexcomm

import (
	"math"
	"strconv"
)

// terminator ends every command sent to the panel.
var terminator = []byte{0xff, 0xff, 0xff}

// formatFloat renders v with two decimals, the way the panel firmware
// examples print floats.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
