// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"errors"
	"strconv"
	"time"
)

// ParseLocation parses "Local", "UTC", a whole-hour offset such as "-8", or an IANA zone name.
func ParseLocation(location string) (*time.Location, error) {
	switch location {
	case "":
		return nil, errors.New("cannot parse location from empty string")
	case "Local":
		return time.Local, nil
	case "UTC", "Z":
		return time.UTC, nil
	}
	hours, err := strconv.Atoi(location)
	if err == nil {
		if hours < -12 || hours > 14 {
			return nil, errors.New("offset out of range: " + location)
		}
		return time.FixedZone("UTC"+location, hours*60*60), nil
	}
	return time.LoadLocation(location)
}
