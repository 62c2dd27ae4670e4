package ili9341

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func expectPanic(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", msg)
		}
		if r != msg {
			t.Fatalf("panic = %v, want %q", r, msg)
		}
	}()
	fn()
}

type testPin struct {
	level bool
}

func (p *testPin) High() { p.level = true }
func (p *testPin) Low()  { p.level = false }

// xfer is one bus transaction as the panel would see it: the level of
// the data/command line and the bytes shifted out.
type xfer struct {
	command bool
	data    []byte
}

type testBus struct {
	dcx      *testPin
	cs       *testPin
	err      error
	writes   []xfer
	readData []byte
}

func (b *testBus) Tx(w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	if b.cs.level {
		return errors.New("transfer with chip not selected")
	}
	if len(w) > 0 {
		b.writes = append(b.writes, xfer{
			command: !b.dcx.level,
			data:    append([]byte(nil), w...),
		})
	}
	for i := range r {
		if len(b.readData) == 0 {
			break
		}
		r[i] = b.readData[0]
		b.readData = b.readData[1:]
	}
	return nil
}

func (b *testBus) Transfer(c byte) (byte, error) {
	var rx [1]byte
	err := b.Tx([]byte{c}, rx[:])
	return rx[0], err
}

func newTestDriver() (*Driver, *testBus, *testPin, *testPin) {
	dcx := &testPin{}
	cs := &testPin{}
	bus := &testBus{dcx: dcx, cs: cs}
	d := NewDriver()
	d.Start(&Config{Bus: bus, DCX: dcx, CS: cs})
	return d, bus, dcx, cs
}

func TestLifecycle(t *testing.T) {
	d := NewDriver()
	if d.State() != StateStop {
		t.Fatalf("state = %d, want Stop", d.State())
	}
	expectPanic(t, badConfig, func() { d.Start(nil) })

	dcx := &testPin{}
	cs := &testPin{}
	d.Start(&Config{Bus: &testBus{dcx: dcx, cs: cs}, DCX: dcx, CS: cs})
	if d.State() != StateReady {
		t.Fatalf("state = %d, want Ready", d.State())
	}
	if !cs.level || !dcx.level {
		t.Error("control lines not parked high by Start")
	}

	d.Stop()
	if d.State() != StateStop {
		t.Fatalf("state = %d, want Stop", d.State())
	}
}

func TestSelectUnselect(t *testing.T) {
	d, _, _, cs := newTestDriver()

	d.Select()
	if d.State() != StateActive || cs.level {
		t.Fatal("Select did not assert chip select")
	}
	expectPanic(t, badState, func() { d.Select() })

	d.Unselect()
	if d.State() != StateReady || !cs.level {
		t.Fatal("Unselect did not release chip select")
	}
	expectPanic(t, badState, func() { d.Unselect() })
}

func TestCommandDataFraming(t *testing.T) {
	d, bus, _, _ := newTestDriver()

	d.Select()
	if err := d.WriteCommand(CmdSleepOut); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteByte(0x12); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteChunk([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	d.Unselect()

	want := []xfer{
		{command: true, data: []byte{CmdSleepOut}},
		{command: false, data: []byte{0x12}},
		{command: false, data: []byte{1, 2, 3}},
	}
	if len(bus.writes) != len(want) {
		t.Fatalf("wrote %d transactions, want %d", len(bus.writes), len(want))
	}
	for i, w := range want {
		got := bus.writes[i]
		if got.command != w.command || !bytes.Equal(got.data, w.data) {
			t.Errorf("transaction %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestZeroLengthChunks(t *testing.T) {
	d, bus, _, _ := newTestDriver()
	d.Select()
	if err := d.WriteChunk(nil); err != nil {
		t.Fatal(err)
	}
	if err := d.ReadChunk(nil); err != nil {
		t.Fatal(err)
	}
	d.Unselect()
	if len(bus.writes) != 0 {
		t.Fatalf("zero-length chunks touched the bus: %+v", bus.writes)
	}
}

func TestReads(t *testing.T) {
	d, bus, dcx, _ := newTestDriver()
	bus.readData = []byte{0xAB, 0x01, 0x02}

	d.Select()
	b, err := d.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 0xAB {
		t.Fatalf("ReadByte = %#x, want 0xAB", b)
	}
	if !dcx.level {
		t.Error("data/command line low during a data read")
	}

	buf := make([]byte, 2)
	if err := d.ReadChunk(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{0x01, 0x02}) {
		t.Fatalf("ReadChunk = %v", buf)
	}
	d.Unselect()
}

func TestCmd(t *testing.T) {
	d, bus, _, _ := newTestDriver()
	d.Select()
	if err := d.Cmd(CmdGammaSet, 0x01); err != nil {
		t.Fatal(err)
	}
	d.Unselect()

	if len(bus.writes) != 2 {
		t.Fatalf("wrote %d transactions, want 2", len(bus.writes))
	}
	if !bus.writes[0].command || bus.writes[0].data[0] != CmdGammaSet {
		t.Errorf("opcode transaction = %+v", bus.writes[0])
	}
	if bus.writes[1].command || bus.writes[1].data[0] != 0x01 {
		t.Errorf("parameter transaction = %+v", bus.writes[1])
	}
}

func TestSetRotation(t *testing.T) {
	want := map[Rotation]uint8{
		Rotation0:   MADCTLColumnOrder | MADCTLBGR,
		Rotation90:  MADCTLRowColSwap | MADCTLBGR,
		Rotation180: MADCTLRowOrder | MADCTLBGR,
		Rotation270: MADCTLRowOrder | MADCTLColumnOrder | MADCTLRowColSwap | MADCTLBGR,
	}
	for r, madctl := range want {
		d, bus, _, _ := newTestDriver()
		d.Select()
		if err := d.SetRotation(r); err != nil {
			t.Fatal(err)
		}
		d.Unselect()
		if bus.writes[0].data[0] != CmdMemAccessCtl || bus.writes[1].data[0] != madctl {
			t.Errorf("rotation %d: %+v", r, bus.writes)
		}
	}
}

func TestBusErrorPropagates(t *testing.T) {
	d, bus, _, _ := newTestDriver()
	bus.err = errors.New("bus fault")
	d.Select()
	if err := d.WriteCommand(CmdNop); err == nil {
		t.Fatal("bus error swallowed")
	}
	d.Unselect()
}

func TestTransactionalStateChecks(t *testing.T) {
	d, _, _, _ := newTestDriver()
	expectPanic(t, badState, func() { d.WriteCommand(CmdNop) })
	expectPanic(t, badState, func() { d.WriteByte(0) })
	expectPanic(t, badState, func() { d.WriteChunk([]byte{0}) })
}

func TestBusOwnership(t *testing.T) {
	d, _, _, _ := newTestDriver()
	d.AcquireBus()
	acquired := make(chan struct{})
	go func() {
		d.AcquireBus()
		close(acquired)
		d.ReleaseBus()
	}()
	select {
	case <-acquired:
		t.Fatal("second owner acquired a held bus")
	case <-time.After(20 * time.Millisecond):
	}
	d.ReleaseBus()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("bus never handed over")
	}
}
