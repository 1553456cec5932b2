// internal/sink/log.go
package sink

import (
	"log"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
)

// Log writes one line per event.
type Log struct {
	logger *log.Logger
	sensor string
}

// NewLog logs through l, or the standard logger when l is nil.
func NewLog(l *log.Logger, sensor string) *Log {
	if l == nil {
		l = log.Default()
	}
	return &Log{logger: l, sensor: sensor}
}

func (s *Log) Deliver(ev protocol.Event) {
	s.logger.Printf("event (sensor=%s): %s", s.sensor, ev)
}
