// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/navwar/gobucket/pkg/ts"
)

// SimpleLogger writes one JSON object per message.
type SimpleLogger struct {
	mu       sync.Mutex
	writer   *errorWriter
	logger   zerolog.Logger
	layout   ts.Layout
	location *time.Location
}

type SimpleLoggerInput struct {
	Writer     io.Writer
	TimeLayout ts.Layout
	Location   *time.Location
}

// Log writes the message with the given fields.
// Later field maps override earlier ones with the same key.
func (s *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writer.err = nil

	merged := map[string]interface{}{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}

	s.logger.Log().
		Str("ts", s.layout.Format(time.Now().In(s.location))).
		Str("msg", msg).
		Fields(merged).
		Send()

	return s.writer.err
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return NewSimpleLoggerWithInput(&SimpleLoggerInput{Writer: w})
}

func NewSimpleLoggerWithInput(input *SimpleLoggerInput) *SimpleLogger {
	location := input.Location
	if location == nil {
		location = time.UTC
	}
	layout := input.TimeLayout
	if len(layout) == 0 {
		layout = ts.DefaultLayout
	}
	ew := &errorWriter{w: input.Writer}
	return &SimpleLogger{
		writer:   ew,
		logger:   zerolog.New(ew),
		layout:   layout,
		location: location,
	}
}

// errorWriter keeps the last write error so Log can return it.
type errorWriter struct {
	w   io.Writer
	err error
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
