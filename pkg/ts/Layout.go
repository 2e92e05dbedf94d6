// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import "time"

// Layout is a Go reference-time layout used to render log timestamps.
type Layout string

// DefaultLayout is the layout used when none is configured.
const DefaultLayout = Layout(time.RFC3339)

func (l Layout) Format(t time.Time) string {
	if len(l) == 0 {
		return t.Format(string(DefaultLayout))
	}
	return t.Format(string(l))
}

// NamedLayouts maps layout names accepted by --log-time-layout to layouts.
var NamedLayouts = map[string]Layout{
	"RFC3339":     time.RFC3339,
	"RFC3339Nano": time.RFC3339Nano,
	"RFC1123":     time.RFC1123,
	"DateTime":    time.DateTime,
	"Stamp":       time.Stamp,
	"StampMilli":  time.StampMilli,
	"Kitchen":     time.Kitchen,
}

// ParseLayout returns the named layout, or the input itself as a layout if it is not a known name.
func ParseLayout(layout string) Layout {
	if format, ok := NamedLayouts[layout]; ok {
		return format
	}
	return Layout(layout)
}
