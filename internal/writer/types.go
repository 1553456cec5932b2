// internal/writer/types.go
package writer

// StatusPlan locates one sensor's link status block.
type StatusPlan struct {
	Endpoint   string
	UnitID     uint8
	BaseSlot   uint16 // block index; the block starts at BaseSlot * SlotsPerDevice
	DeviceName string
}

// endpointClient is the write side of one Modbus TCP endpoint.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
