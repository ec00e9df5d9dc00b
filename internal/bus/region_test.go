package bus

import "testing"

func TestBankMapTotality(t *testing.T) {
	for i := 0; i < 32; i++ {
		for n := 0; n < 16; n++ {
			r := bankMap[i][n]
			if r < RegionRAM || r > RegionNone {
				t.Fatalf("bankMap[%d][%d] = %v, not a valid region", i, n, r)
			}
		}
	}
}

func TestZeroPageAlwaysRAM(t *testing.T) {
	for i := 0; i < 32; i++ {
		if bankMap[i][0x0] != RegionRAM || bankMap[i][0x1] != RegionRAM {
			t.Fatalf("ctrl %d: $0000-$1FFF must always be RAM, got %v/%v", i, bankMap[i][0x0], bankMap[i][0x1])
		}
	}
}

func TestStandardMap(t *testing.T) {
	// LORAM=HIRAM=CHAREN=1, GAME=EXROM=1 (no cartridge): BASIC/IO/KERNAL visible.
	i := ctrlIndex(true, true, true, true, true)
	cases := map[int]Region{
		0xA: RegionBasicROM,
		0xD: RegionIO,
		0xE: RegionKernalROM,
	}
	for nibble, want := range cases {
		if got := bankMap[i][nibble]; got != want {
			t.Errorf("nibble %#x: got %v, want %v", nibble, got, want)
		}
	}
}

func TestAllRAMMap(t *testing.T) {
	// LORAM=HIRAM=CHAREN=0 with no cartridge: everything collapses to RAM, $D000 included.
	i := ctrlIndex(false, false, false, true, true)
	for _, nibble := range []int{0x2, 0xA, 0xC, 0xE} {
		if got := bankMap[i][nibble]; got != RegionRAM {
			t.Errorf("nibble %#x: got %v, want RAM", nibble, got)
		}
	}
	if got := bankMap[i][0xD]; got != RegionRAM {
		t.Errorf("nibble 0xD: got %v, want RAM (LORAM=HIRAM=0 maps RAM here regardless of CHAREN)", got)
	}
}

func TestUltimaxMap(t *testing.T) {
	// GAME=0, EXROM=1: ultimax. ROML at $8000, ROMH at $E000, everything
	// else in between unmapped except IO, which always shows through.
	i := ctrlIndex(true, true, true, false, true)
	if got := bankMap[i][0x8]; got != RegionCartLo {
		t.Errorf("ultimax $8000: got %v, want CRTLO", got)
	}
	if got := bankMap[i][0xE]; got != RegionCartHi {
		t.Errorf("ultimax $E000: got %v, want CRTHI", got)
	}
	if got := bankMap[i][0xA]; got != RegionNone {
		t.Errorf("ultimax $A000: got %v, want NONE", got)
	}
	if got := bankMap[i][0xD]; got != RegionIO {
		t.Errorf("ultimax $D000: got %v, want IO", got)
	}
}

func TestPokeTargetCollapsesROMToRAM(t *testing.T) {
	for _, r := range []Region{RegionBasicROM, RegionKernalROM, RegionCharROM} {
		if got := pokeTargetForRegion(r); got != RegionRAM {
			t.Errorf("pokeTargetForRegion(%v) = %v, want RAM", r, got)
		}
	}
	for _, r := range []Region{RegionRAM, RegionIO, RegionCartLo, RegionCartHi, RegionNone} {
		if got := pokeTargetForRegion(r); got != r {
			t.Errorf("pokeTargetForRegion(%v) = %v, want unchanged", r, got)
		}
	}
}
