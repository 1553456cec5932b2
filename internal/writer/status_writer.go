// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/mmwave-presence/internal/status"
)

// StatusWriter is the delivery-only contract for link status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// deviceStatusWriter writes one sensor's block to a holding register area.
type deviceStatusWriter struct {
	plan StatusPlan
	cli  endpointClient

	needFull bool
	last     []uint16 // runtime slots as last written
	nameRegs []uint16
}

// runtimeSlots are written incrementally; everything else only on full assert.
var runtimeSlots = []int{
	status.SlotHealthCode,
	status.SlotLastErrorCode,
	status.SlotSecondsInError,
	status.SlotPresence,
	status.SlotBodyDataHi,
	status.SlotBodyDataLo,
	status.SlotChecksumErrors,
}

var slotNames = map[int]string{
	status.SlotHealthCode:     "health",
	status.SlotLastErrorCode:  "last_error",
	status.SlotSecondsInError: "seconds",
	status.SlotPresence:       "presence",
	status.SlotBodyDataHi:     "body_hi",
	status.SlotBodyDataLo:     "body_lo",
	status.SlotChecksumErrors: "crc_errors",
}

// NewDeviceStatusWriter builds a status writer over cli.
func NewDeviceStatusWriter(plan StatusPlan, cli endpointClient) (*deviceStatusWriter, error) {
	if cli == nil {
		return nil, fmt.Errorf("status writer: missing client for endpoint %s", plan.Endpoint)
	}
	return &deviceStatusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		nameRegs: status.EncodeDeviceName(sanitizeName(plan.DeviceName)),
	}, nil
}

// WriteStatus delivers a link status snapshot into status memory.
// On any write failure, the next call will re-assert the full block.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.cli == nil {
		return errors.New("status writer: disabled")
	}

	regs := status.Encode(s)
	base := sw.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		copy(regs[status.SlotDeviceNameStart:], sw.nameRegs)

		if err := sw.cli.WriteRegisters(sw.plan.UnitID, base, regs); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = regs
		return nil
	}

	var errs []string

	for _, slot := range runtimeSlots {
		if sw.last[slot] == regs[slot] {
			continue
		}
		if err := sw.cli.WriteRegisters(
			sw.plan.UnitID,
			base+uint16(slot),
			[]uint16{regs[slot]},
		); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d %s write failed: %v", slot, slotNames[slot], err))
			continue
		}
		sw.last[slot] = regs[slot]
	}

	if len(errs) > 0 {
		// partial failure: block content is in doubt
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *deviceStatusWriter) baseAddr() uint16 {
	// Each sensor owns a fixed SlotsPerDevice block.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}

// sanitizeName replaces anything outside printable ASCII.
func sanitizeName(name string) string {
	b := []byte(name)
	for i := range b {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}
	return string(b)
}
