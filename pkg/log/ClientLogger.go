// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"fmt"
	"strings"

	"github.com/aws/smithy-go/logging"
)

// ClientLogger forwards AWS SDK client events to a SimpleLogger.
type ClientLogger struct {
	logger *SimpleLogger
}

var clientEventPrefixes = []struct {
	prefix string
	msg    string
}{
	{prefix: "Request Signature:\n", msg: "Request Signature"},
	{prefix: "Request\n", msg: "Request"},
	{prefix: "Response\n", msg: "Response"},
}

func (c *ClientLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	event := fmt.Sprintf(format, v...)
	msg := "Client Event"
	details := event
	for _, p := range clientEventPrefixes {
		if strings.HasPrefix(event, p.prefix) {
			msg = p.msg
			details = event[len(p.prefix):]
			break
		}
	}
	// write errors are dropped, the SDK has no way to surface them
	_ = c.logger.Log(msg, map[string]interface{}{
		"classification": string(classification),
		"details":        details,
	})
}

func NewClientLogger(logger *SimpleLogger) *ClientLogger {
	return &ClientLogger{logger: logger}
}

var _ logging.Logger = (*ClientLogger)(nil)
