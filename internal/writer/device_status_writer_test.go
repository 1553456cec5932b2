// internal/writer/device_status_writer_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/tamzrod/mmwave-presence/internal/status"
)

// ---- fake endpoint client ----

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

type fakeEndpointClient struct {
	writes []writeCall
	fail   bool
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("connection reset")
	}
	f.writes = append(f.writes, writeCall{
		unitID: unitID,
		addr:   addr,
		regs:   append([]uint16(nil), regs...),
	})
	return nil
}

func (f *fakeEndpointClient) last() writeCall {
	return f.writes[len(f.writes)-1]
}

func newTestWriter(t *testing.T, cli *fakeEndpointClient) (*deviceStatusWriter, StatusPlan) {
	t.Helper()

	plan := StatusPlan{
		Endpoint:   "status-endpoint",
		UnitID:     1,
		BaseSlot:   2,
		DeviceName: "presence-bedroom",
	}

	sw, err := NewDeviceStatusWriter(plan, cli)
	if err != nil {
		t.Fatalf("NewDeviceStatusWriter: %v", err)
	}
	return sw, plan
}

// ---- tests ----

func TestDeviceNameWrittenOnFullAssertOnly(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw, plan := newTestWriter(t, cli)

	// ---- first write: FULL ASSERT ----
	first := status.Snapshot{Health: status.HealthInitializing}

	if err := sw.WriteStatus(first); err != nil {
		t.Fatalf("initial full assert failed: %v", err)
	}

	w := cli.last()
	if len(w.regs) != status.SlotsPerDevice {
		t.Fatalf("expected full block write (%d regs), got %d", status.SlotsPerDevice, len(w.regs))
	}
	if w.addr != plan.BaseSlot*status.SlotsPerDevice || w.unitID != 1 {
		t.Fatalf("full block at unit=%d addr=%d", w.unitID, w.addr)
	}

	expectedNameRegs := status.EncodeDeviceName(plan.DeviceName)
	for i := 0; i < status.SlotDeviceNameSlots; i++ {
		slot := status.SlotDeviceNameStart + i
		if w.regs[slot] != expectedNameRegs[i] {
			t.Fatalf("device name slot %d mismatch: got=%d want=%d", slot, w.regs[slot], expectedNameRegs[i])
		}
	}

	// ---- second write: INCREMENTAL ONLY ----
	second := first
	second.Health = status.HealthOK
	second.Presence = status.PresenceMoving

	if err := sw.WriteStatus(second); err != nil {
		t.Fatalf("incremental write failed: %v", err)
	}

	if len(cli.writes) != 3 {
		t.Fatalf("expected 2 single-slot writes after full assert, got %d writes total", len(cli.writes))
	}
	for _, w := range cli.writes[1:] {
		if len(w.regs) != 1 {
			t.Fatalf("incremental write of %d regs at %d", len(w.regs), w.addr)
		}
	}
}

func TestUnchangedSnapshotWritesNothing(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw, _ := newTestWriter(t, cli)

	snap := status.Snapshot{Health: status.HealthOK, BodyData: 3.5}
	_ = sw.WriteStatus(snap)
	_ = sw.WriteStatus(snap)

	if len(cli.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(cli.writes))
	}
}

func TestBodyDataWritesBothWords(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw, plan := newTestWriter(t, cli)

	_ = sw.WriteStatus(status.Snapshot{})
	if err := sw.WriteStatus(status.Snapshot{BodyData: -2}); err != nil { // 0xC0000000
		t.Fatal(err)
	}

	if len(cli.writes) != 2 {
		t.Fatalf("writes = %d, want 2 (hi word only changes)", len(cli.writes))
	}
	w := cli.last()
	if w.addr != plan.BaseSlot*status.SlotsPerDevice+status.SlotBodyDataHi || w.regs[0] != 0xC000 {
		t.Fatalf("body write addr=%d regs=%v", w.addr, w.regs)
	}
}

func TestSecondsInErrorResetOnRecovery(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw, plan := newTestWriter(t, cli)

	// simulate ERROR
	errSnap := status.Snapshot{
		Health:         status.HealthError,
		LastErrorCode:  2,
		SecondsInError: 3,
	}
	if err := sw.WriteStatus(errSnap); err != nil {
		t.Fatalf("error snapshot write failed: %v", err)
	}

	// simulate recovery, keeping the last error code
	okSnap := status.Snapshot{
		Health:        status.HealthOK,
		LastErrorCode: 2,
	}
	if err := sw.WriteStatus(okSnap); err != nil {
		t.Fatalf("recovery snapshot write failed: %v", err)
	}

	expectedAddr := plan.BaseSlot*status.SlotsPerDevice + status.SlotSecondsInError

	w := cli.last()
	if w.addr != expectedAddr {
		t.Fatalf("unexpected write addr: got=%d want=%d", w.addr, expectedAddr)
	}
	if len(w.regs) != 1 || w.regs[0] != 0 {
		t.Fatalf("seconds_in_error not reset: %v", w.regs)
	}
}

func TestFailureForcesFullAssert(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw, _ := newTestWriter(t, cli)

	_ = sw.WriteStatus(status.Snapshot{Health: status.HealthOK})

	cli.fail = true
	if err := sw.WriteStatus(status.Snapshot{Health: status.HealthError}); err == nil {
		t.Fatalf("expected error from failing client")
	}

	cli.fail = false
	if err := sw.WriteStatus(status.Snapshot{Health: status.HealthError}); err != nil {
		t.Fatalf("write after recovery: %v", err)
	}

	if n := len(cli.last().regs); n != status.SlotsPerDevice {
		t.Fatalf("expected full block re-assert, got %d regs", n)
	}
}

func TestFirstWriteFailureRetriesFull(t *testing.T) {
	cli := &fakeEndpointClient{fail: true}
	sw, _ := newTestWriter(t, cli)

	if err := sw.WriteStatus(status.Snapshot{}); err == nil {
		t.Fatalf("expected error")
	}

	cli.fail = false
	if err := sw.WriteStatus(status.Snapshot{}); err != nil {
		t.Fatal(err)
	}
	if n := len(cli.last().regs); n != status.SlotsPerDevice {
		t.Fatalf("expected full block, got %d regs", n)
	}
}

func TestDeviceNameSanitized(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw, err := NewDeviceStatusWriter(StatusPlan{DeviceName: "a\tb"}, cli)
	if err != nil {
		t.Fatal(err)
	}
	_ = sw.WriteStatus(status.Snapshot{})

	regs := cli.last().regs
	if regs[status.SlotDeviceNameStart] != 0x613F || regs[status.SlotDeviceNameStart+1] != 0x6200 {
		t.Fatalf("name regs = %04X %04X", regs[status.SlotDeviceNameStart], regs[status.SlotDeviceNameStart+1])
	}
}

func TestNewDeviceStatusWriter_NilClient(t *testing.T) {
	if _, err := NewDeviceStatusWriter(StatusPlan{Endpoint: "x"}, nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
