package container_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/container"
)

func buildCRT(t *testing.T, hwType uint16, game, exrom byte, romData []byte, loadAddr uint16) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("C64 CARTRIDGE   ")
	binary.Write(&buf, binary.BigEndian, uint32(0x40))
	header := make([]byte, 0x40-20)
	binary.BigEndian.PutUint16(header[2:4], hwType)
	header[4] = exrom
	header[5] = game
	copy(header[20:], "test cart")
	buf.Write(header)

	buf.WriteString("CHIP")
	binary.Write(&buf, binary.BigEndian, uint32(16+len(romData)))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, uint16(0))
	binary.Write(&buf, binary.BigEndian, loadAddr)
	binary.Write(&buf, binary.BigEndian, uint16(len(romData)))
	buf.Write(romData)
	return buf.Bytes()
}

func TestParseCRTReadsHeaderAndChipPacket(t *testing.T) {
	rom := bytes.Repeat([]byte{0xAA}, 8192)
	raw := buildCRT(t, 0, 1, 1, rom, 0x8000)

	c, err := container.ParseCRT(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseCRT: %v", err)
	}
	if c.Kind != cartridge.Generic8K {
		t.Fatalf("Kind = %v, want Generic8K", c.Kind)
	}
	if len(c.Chips) != 1 {
		t.Fatalf("len(Chips) = %d, want 1", len(c.Chips))
	}
	if c.Chips[0].LoadAddress != 0x8000 || len(c.Chips[0].Data) != len(rom) {
		t.Fatalf("chip packet mismatch: %+v", c.Chips[0])
	}
}

func TestParseCRTRejectsBadMagic(t *testing.T) {
	raw := []byte("NOT A CARTRIDGE!!!!")
	if _, err := container.ParseCRT(bytes.NewReader(raw)); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func buildT64(t *testing.T, entries []container.T64Entry, payload []byte) []byte {
	t.Helper()
	hdr := make([]byte, 0x40)
	copy(hdr[0:], "C64 tape image file")
	hdr[0x22] = byte(len(entries))
	hdr[0x23] = byte(len(entries) >> 8)
	copy(hdr[0x28:0x40], "TEST DISK")

	var buf bytes.Buffer
	buf.Write(hdr)
	for _, e := range entries {
		rec := make([]byte, 32)
		if e.Used {
			rec[0] = 1
		}
		rec[1] = e.Type
		rec[2] = byte(e.StartAddr)
		rec[3] = byte(e.StartAddr >> 8)
		rec[4] = byte(e.EndAddr)
		rec[5] = byte(e.EndAddr >> 8)
		binary.LittleEndian.PutUint32(rec[8:12], e.OffsetInFile)
		copy(rec[16:32], e.Filename)
		buf.Write(rec)
	}
	buf.Write(payload)
	return buf.Bytes()
}

func TestParseT64ListsUsedEntriesAndReadsBytes(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	entries := []container.T64Entry{
		{Used: true, StartAddr: 0x0801, EndAddr: 0x0801 + uint16(len(payload)), OffsetInFile: 0x60, Filename: "PROGRAM"},
	}
	raw := buildT64(t, entries, payload)

	tp, err := container.ParseT64(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseT64: %v", err)
	}
	if len(tp.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(tp.Entries))
	}

	cur := tp.Cursor()
	if err := cur.SelectItem(0); err != nil {
		t.Fatalf("SelectItem: %v", err)
	}
	if cur.NameOfItem() != "PROGRAM" {
		t.Fatalf("NameOfItem = %q", cur.NameOfItem())
	}
	if cur.DestinationAddrOfItem() != 0x0801 {
		t.Fatalf("DestinationAddrOfItem = %#04x", cur.DestinationAddrOfItem())
	}

	var got []byte
	for {
		b, ok := cur.ReadItem()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadItem bytes = %v, want %v", got, payload)
	}
}

func TestParseT64RejectsBadMagic(t *testing.T) {
	raw := make([]byte, 0x40)
	copy(raw, "NOPE")
	if _, err := container.ParseT64(bytes.NewReader(raw)); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}
