// Package rom loads the fixed-size system ROM images spec.md §6 requires
// (Basic, Character, Kernal, and an optional disk-drive ROM) and
// fingerprints each with FNV-1a-64, so a host can report and compare
// exactly which dump it's running without this core opening any files
// itself - the boundary spec.md's non-goals draw around file I/O stays
// at the host/cmd layer, handed here only as an io.Reader.
package rom

import (
	"hash/fnv"
	"io"

	"github.com/TimothyRLaMora734/virtualc64/internal/curatederr"
)

// Sizes of the three mandatory ROM images, in bytes.
const (
	BasicSize     = 8192
	CharacterSize = 4096
	KernalSize    = 8192
)

// Image is one loaded ROM: its raw bytes plus an FNV-1a-64 fingerprint
// over that exact content.
type Image struct {
	Data        []byte
	Fingerprint uint64
}

// Fingerprint hashes data with FNV-1a-64.
func Fingerprint(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// Load reads all of r and requires the result to be exactly size bytes;
// a drive ROM (size variable across 1541/1571/1581 dumps) should pass
// its own expected size rather than one of the constants above.
func Load(r io.Reader, name string, size int) (Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Image{}, curatederr.Errorf(curatederr.MissingROM, name)
	}
	if len(data) != size {
		return Image{}, curatederr.Errorf(curatederr.MissingROM, name)
	}
	return Image{Data: data, Fingerprint: Fingerprint(data)}, nil
}

// LoadBasic, LoadCharacter, LoadKernal load the three mandatory images.
func LoadBasic(r io.Reader) (Image, error)     { return Load(r, "basic", BasicSize) }
func LoadCharacter(r io.Reader) (Image, error) { return Load(r, "character", CharacterSize) }
func LoadKernal(r io.Reader) (Image, error)    { return Load(r, "kernal", KernalSize) }

// LoadDrive loads an optional disk-drive ROM of the given size (1541:
// 16384, 1571: 16384, 1581: 32768 - the caller knows which drive it's
// attaching and supplies the right size).
func LoadDrive(r io.Reader, size int) (Image, error) { return Load(r, "drive", size) }
