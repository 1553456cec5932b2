// internal/radar/errors.go
package radar

import (
	"fmt"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
)

// CodeInitializationTimeout is surfaced in the link status block.
const CodeInitializationTimeout uint16 = 5

// InitializationTimeoutError means a register was never acknowledged
// with the value that was sent.
type InitializationTimeoutError struct {
	Step     string
	Register protocol.Register
	Value    byte
	Attempts int
}

func (e *InitializationTimeoutError) Error() string {
	return fmt.Sprintf("radar: %s (reg=%s value=%d) not acknowledged after %d attempt(s)",
		e.Step, e.Register, e.Value, e.Attempts)
}

func (e *InitializationTimeoutError) Code() uint16 { return CodeInitializationTimeout }
