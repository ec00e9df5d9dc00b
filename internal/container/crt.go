// Package container parses the two read-only container formats spec.md
// §6 names byte-for-byte: CRT (cartridge images) and T64 (tape archives).
// Parsing takes an io.Reader and returns a value type - actually opening
// the file is left to the host, matching the "file I/O is out of scope"
// boundary the rest of this core draws for containers.
package container

import (
	"encoding/binary"
	"io"

	"github.com/TimothyRLaMora734/virtualc64/internal/cartridge"
	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
)

var crtMagic = [16]byte{'C', '6', '4', ' ', 'C', 'A', 'R', 'T', 'R', 'I', 'D', 'G', 'E', ' ', ' ', ' '}

// CRT is a parsed cartridge image: the hardware-type-derived mapper
// kind, the GAME/EXROM lines it was built with, and every CHIP packet.
type CRT struct {
	Kind      cartridge.Kind
	GameLine  bool
	ExromLine bool
	Name      string
	Chips     []cartridge.ChipPacket
}

// hardwareTypeKind maps the CRT header's 16-bit hardware-type field to
// the mapper this core implements; unrecognised types fall back to a
// plain ROM cartridge sized by its chip packets.
func hardwareTypeKind(t uint16, sizeHint int) cartridge.Kind {
	switch t {
	case 0:
		if sizeHint > 8192 {
			return cartridge.Generic16K
		}
		return cartridge.Generic8K
	case 1:
		return cartridge.ActionReplayV3
	case 3:
		return cartridge.FinalCartridgeIII
	case 10:
		return cartridge.EpyxFastload
	case 13:
		return cartridge.StarDos
	case 32:
		return cartridge.EasyFlash
	default:
		if sizeHint > 8192 {
			return cartridge.Generic16K
		}
		return cartridge.Generic8K
	}
}

// ParseCRT reads a full CRT image from r.
func ParseCRT(r io.Reader) (*CRT, error) {
	var magic [16]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "truncated header")
	}
	if magic != crtMagic {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "bad magic")
	}

	var hdrLen uint32
	if err := binary.Read(r, binary.BigEndian, &hdrLen); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "truncated header length")
	}

	rest := make([]byte, hdrLen-20)
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "truncated header body")
	}
	if len(rest) < 22 {
		return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "header too short")
	}

	hwType := binary.BigEndian.Uint16(rest[2:4])
	exrom := rest[4]
	game := rest[5]
	name := trimPETSCII(rest[22:])

	c := &CRT{
		GameLine:  game != 0,
		ExromLine: exrom != 0,
		Name:      name,
	}

	totalSize := 0
	for {
		var chipMagic [4]byte
		_, err := io.ReadFull(r, chipMagic[:])
		if err == io.EOF {
			break
		}
		if err != nil || string(chipMagic[:]) != "CHIP" {
			return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "bad CHIP magic")
		}

		var packetLen uint32
		if err := binary.Read(r, binary.BigEndian, &packetLen); err != nil {
			return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "truncated CHIP length")
		}

		var chipHeader struct {
			ChipType, Bank, LoadAddr, ROMSize uint16
		}
		if err := binary.Read(r, binary.BigEndian, &chipHeader); err != nil {
			return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "truncated CHIP sub-header")
		}
		chipType, bank, loadAddr, romSize := chipHeader.ChipType, chipHeader.Bank, chipHeader.LoadAddr, chipHeader.ROMSize

		data := make([]byte, romSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, curatederr.Errorf(curatederr.MalformedContainer, "crt", "truncated CHIP data")
		}

		c.Chips = append(c.Chips, cartridge.ChipPacket{
			Type:        chipType,
			LoadAddress: loadAddr,
			BankNumber:  bank,
			Data:        data,
		})
		totalSize += int(romSize)
	}

	c.Kind = hardwareTypeKind(hwType, totalSize)
	return c, nil
}

func trimPETSCII(b []byte) string {
	end := len(b)
	for i, v := range b {
		if v == 0 {
			end = i
			break
		}
	}
	return string(b[:end])
}
