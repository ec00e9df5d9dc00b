// Package snapshot serializes a running machine to a single file and
// restores one from it: spec.md §6's save-state container, versioned so
// a snapshot taken by one build can be rejected cleanly by a later one
// instead of corrupting it.
//
// The file's fixed-size header (magic, version, screenshot, timestamp,
// body length) is laid out with encoding/binary the way internal/container
// lays out CRT/T64 headers; the body - the machine's own component state,
// whose cartridge slice varies in shape per mapper kind - is encoded with
// encoding/gob, the same declarative-serialize idiom other_examples'
// save-state code uses for the same reason: a fixed binary.Read/Write
// struct can't describe a value whose shape depends on which cartridge is
// attached.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"

	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/ciahook"
	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
	"github.com/TimothyRLaMora734/virtualc64/internal/system"
	"github.com/TimothyRLaMora734/virtualc64/internal/vic"
)

var magic = [4]byte{'V', 'C', '6', '4'}

// Version identifies the snapshot body's layout. A snapshot whose
// version does not match is rejected outright rather than partially
// applied - spec.md §6's compatibility check is all-or-nothing.
const (
	Major    = 1
	Minor    = 0
	Subminor = 0
)

// Screenshot is a thumbnail of the frame at the moment the snapshot was
// taken, carried so a host can list snapshots without replaying them.
type Screenshot struct {
	Width, Height int
	Pixels        []byte // RGBA, Width*Height*4 bytes
}

type header struct {
	Major, Minor, Subminor uint8
	Width, Height          uint32
	Timestamp              int64
	DataSize               uint32
}

// body is the gob-encoded payload: every component's own state, plus the
// cartridge's mutable register/RAM state keyed by the kind it was taken
// from (a sanity check against restoring onto a differently attached
// cartridge, not a way to reconstruct one from nothing).
type body struct {
	TotalCycles uint64

	CPUProgramCounter uint16
	CPUAccumulator    uint8
	CPURegisterX      uint8
	CPURegisterY      uint8
	CPUStackPointer   uint8
	CPUStatus         uint8

	RAM      []byte
	ColorRAM []byte
	PortDDR  uint8
	PortData uint8

	VIC  vic.State
	CIA1 ciahook.State
	CIA2 ciahook.State

	CartKind  cartridge.Kind
	CartState interface{}
}

// Save writes a complete snapshot of s to w, tagging it with the given
// screenshot and timestamp (both supplied by the host - this package has
// no notion of wall-clock time or a frame buffer's pixel format beyond
// carrying the bytes through).
func Save(w io.Writer, s *system.System, shot Screenshot, timestamp int64) error {
	ddr, port := s.Bus.ProcessorPort()

	b := body{
		TotalCycles:       s.TotalCycles(),
		CPUProgramCounter: s.CPU.ProgramCounter(),
		CPUAccumulator:    s.CPU.Accumulator(),
		CPURegisterX:      s.CPU.RegisterX(),
		CPURegisterY:      s.CPU.RegisterY(),
		CPUStackPointer:   s.CPU.StackPointer(),
		CPUStatus:         s.CPU.StatusByte(),
		RAM:               append([]byte(nil), s.Bus.RAM()...),
		ColorRAM:          append([]byte(nil), s.Bus.ColorRAM()...),
		PortDDR:           ddr,
		PortData:          port,
		VIC:               s.VIC.Snapshot(),
		CIA1:              s.CIA1.Snapshot(),
		CIA2:              s.CIA2.Snapshot(),
		CartKind:          s.Cart.Kind(),
		CartState:         s.Cart.SaveState(),
	}

	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(&b); err != nil {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "encode", err.Error())
	}

	hdr := header{
		Major: Major, Minor: Minor, Subminor: Subminor,
		Width: uint32(shot.Width), Height: uint32(shot.Height),
		Timestamp: timestamp,
		DataSize:  uint32(payload.Len()),
	}

	if _, err := w.Write(magic[:]); err != nil {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "write", err.Error())
	}
	if err := binary.Write(w, binary.BigEndian, &hdr); err != nil {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "write", err.Error())
	}
	if _, err := w.Write(shot.Pixels); err != nil {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "write", err.Error())
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "write", err.Error())
	}
	return nil
}

// Snapshot is a parsed, not-yet-applied save state.
type Snapshot struct {
	Screenshot Screenshot
	Timestamp  int64
	body       body
}

// Load reads and validates a snapshot's header and body from r, without
// touching any System. Apply it afterward once the caller has confirmed
// it wants to commit to the machine state it carries.
func Load(r io.Reader) (*Snapshot, error) {
	var got [4]byte
	if _, err := io.ReadFull(r, got[:]); err != nil || got != magic {
		return nil, curatederr.Errorf(curatederr.MalformedSnapshot, "header", "bad magic")
	}

	var hdr header
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedSnapshot, "header", "truncated")
	}
	if hdr.Major != Major || hdr.Minor != Minor || hdr.Subminor != Subminor {
		return nil, curatederr.Errorf(curatederr.UnsupportedSnapshot, int(hdr.Major), int(hdr.Minor), int(hdr.Subminor))
	}

	pixels := make([]byte, int(hdr.Width)*int(hdr.Height)*4)
	if _, err := io.ReadFull(r, pixels); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedSnapshot, "screenshot", "truncated")
	}

	payload := make([]byte, hdr.DataSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedSnapshot, "body", "truncated")
	}

	var b body
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&b); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedSnapshot, "body", err.Error())
	}

	return &Snapshot{
		Screenshot: Screenshot{Width: int(hdr.Width), Height: int(hdr.Height), Pixels: pixels},
		Timestamp:  hdr.Timestamp,
		body:       b,
	}, nil
}

// Apply restores s to the state this snapshot carries. The cartridge
// already attached to s must be the same kind the snapshot was taken
// from - a snapshot carries a mapper's mutable registers and RAM, not a
// ROM image to reconstruct one from scratch.
func (snap *Snapshot) Apply(s *system.System) error {
	b := snap.body

	if s.Cart.Kind() != b.CartKind {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "cartridge", "attached cartridge kind does not match snapshot")
	}
	if err := s.Cart.RestoreState(b.CartState); err != nil {
		return err
	}

	if len(b.RAM) != len(s.Bus.RAM()) || len(b.ColorRAM) != len(s.Bus.ColorRAM()) {
		return curatederr.Errorf(curatederr.MalformedSnapshot, "bus", "RAM size mismatch")
	}
	copy(s.Bus.RAM(), b.RAM)
	copy(s.Bus.ColorRAM(), b.ColorRAM)
	s.Bus.SetProcessorPort(b.PortDDR, b.PortData)

	s.VIC.Restore(b.VIC)
	s.CIA1.Restore(b.CIA1)
	s.CIA2.Restore(b.CIA2)

	s.CPU.Restore(b.CPUProgramCounter, b.CPUAccumulator, b.CPURegisterX, b.CPURegisterY, b.CPUStackPointer, b.CPUStatus)

	return nil
}
