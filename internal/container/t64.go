package container

import (
	"io"

	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
)

// T64Entry is one 32-byte directory record, laid out exactly as the
// format specifies: used flag, file type, start/end load address,
// two reserved bytes, the file's byte offset within the container, a
// reserved dword, and a 16-byte PETSCII filename.
type T64Entry struct {
	Used         bool
	Type         uint8
	StartAddr    uint16
	EndAddr      uint16
	OffsetInFile uint32
	Filename     string
}

// T64 is a parsed tape archive: its disk name and directory, plus the
// raw file bytes entries' OffsetInFile indexes into.
type T64 struct {
	DiskName string
	Entries  []T64Entry
	raw      []byte
}

// ParseT64 reads a complete T64 image from r.
func ParseT64(r io.Reader) (*T64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "t64", "read failed")
	}
	if len(raw) < 0x40 {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "t64", "truncated header")
	}
	if string(raw[0:3]) != "C64" {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "t64", "bad magic")
	}

	entryCount := int(raw[0x22]) | int(raw[0x23])<<8
	t := &T64{
		DiskName: trimPETSCII(raw[0x28:0x40]),
		raw:      raw,
	}

	for i := 0; i < entryCount; i++ {
		off := 0x40 + i*32
		if off+32 > len(raw) {
			break
		}
		rec := raw[off : off+32]
		e := T64Entry{
			Used:         rec[0] != 0,
			Type:         rec[1],
			StartAddr:    uint16(rec[2]) | uint16(rec[3])<<8,
			EndAddr:      uint16(rec[4]) | uint16(rec[5])<<8,
			OffsetInFile: uint32(rec[8]) | uint32(rec[9])<<8 | uint32(rec[10])<<16 | uint32(rec[11])<<24,
			Filename:     trimPETSCII(rec[16:32]),
		}
		if e.Used {
			t.Entries = append(t.Entries, e)
		}
	}
	return t, nil
}

// ItemSource is the generic item-iterator shape spec.md §6 names for
// tape/disk formats; T64 implements it directly over its directory.
type ItemSource interface {
	SelectItem(i int) error
	NameOfItem() string
	SizeOfItem() int
	DestinationAddrOfItem() uint16
	ReadItem() (b byte, ok bool)
}

type t64Cursor struct {
	t       *T64
	current int
	pos     int
}

// Cursor returns a fresh ItemSource positioned before the first entry.
func (t *T64) Cursor() ItemSource { return &t64Cursor{t: t, current: -1} }

func (c *t64Cursor) SelectItem(i int) error {
	if i < 0 || i >= len(c.t.Entries) {
		return curatederr.Errorf(curatederr.MalformedContainer, "t64", "item index out of range")
	}
	c.current = i
	c.pos = 0
	return nil
}

func (c *t64Cursor) entry() T64Entry { return c.t.Entries[c.current] }

func (c *t64Cursor) NameOfItem() string {
	if c.current < 0 {
		return ""
	}
	return c.entry().Filename
}

func (c *t64Cursor) SizeOfItem() int {
	if c.current < 0 {
		return 0
	}
	e := c.entry()
	return int(e.EndAddr) - int(e.StartAddr)
}

func (c *t64Cursor) DestinationAddrOfItem() uint16 {
	if c.current < 0 {
		return 0
	}
	return c.entry().StartAddr
}

func (c *t64Cursor) ReadItem() (byte, bool) {
	if c.current < 0 {
		return 0, false
	}
	e := c.entry()
	idx := int(e.OffsetInFile) + c.pos
	if c.pos >= c.SizeOfItem() || idx >= len(c.t.raw) {
		return 0, false
	}
	b := c.t.raw[idx]
	c.pos++
	return b, true
}
