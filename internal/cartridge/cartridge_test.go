package cartridge

import "testing"

func TestGenericROMMapsLoadAddressIntoROML(t *testing.T) {
	chips := []ChipPacket{{LoadAddress: 0x8000, BankNumber: 0, Data: []byte{0x11, 0x22, 0x33}}}
	c, err := New(Generic8K, true, false, chips)
	if err != nil {
		t.Fatal(err)
	}
	if c.PeekROML(0) != 0x11 || c.PeekROML(2) != 0x33 {
		t.Fatalf("ROML contents wrong: %#02x %#02x", c.PeekROML(0), c.PeekROML(2))
	}
	if !c.GameLine() || c.ExromLine() {
		t.Fatalf("8K generic cartridge should assert GAME=1, EXROM=0")
	}
}

func TestActionReplayFreezePullsNMIAndResetsToBankZero(t *testing.T) {
	chips := []ChipPacket{
		{BankNumber: 0, Data: bytesOf(8192, 0xA0)},
		{BankNumber: 3, Data: bytesOf(8192, 0xB3)},
	}
	c, err := New(ActionReplayV3, true, false, chips)
	if err != nil {
		t.Fatal(err)
	}
	c.PokeIO1(0, 0x03) // select bank 3
	if c.PeekROML(0) != 0xB3 {
		t.Fatalf("bank select did not switch ROML bank")
	}

	c.PressButton(0)
	if !c.NMIWillTrigger() {
		t.Fatalf("freeze button did not request NMI")
	}
	c.NMIDidTrigger()
	if c.NMIWillTrigger() {
		t.Fatalf("NMI request not consumed")
	}
	if c.PeekROML(0) != 0xA0 {
		t.Fatalf("freeze did not reset to bank 0")
	}
}

func TestEasyFlashByteProgramSequence(t *testing.T) {
	c, err := New(EasyFlash, false, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	fr := c.(*flashRom)

	c.PokeROML(0x5555, 0xAA)
	c.PokeROML(0x2AAA, 0x55)
	c.PokeROML(0x5555, 0xA0)
	c.PokeROML(0x9000, 0x42)

	if got := c.PeekROML(0x9000); got != 0x42 {
		t.Fatalf("programmed byte = %#02x, want 0x42", got)
	}
	if fr.roml.state != flashRead {
		t.Fatalf("flash state after program = %v, want flashRead", fr.roml.state)
	}
}

func TestEasyFlashProgramCannotSetAClearedBit(t *testing.T) {
	c, err := New(EasyFlash, false, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	fr := c.(*flashRom)

	c.PokeROML(0x5555, 0xAA)
	c.PokeROML(0x2AAA, 0x55)
	c.PokeROML(0x5555, 0xA0)
	c.PokeROML(0x9000, 0x0F) // clears upper nibble, from erased 0xFF -> 0x0F

	c.PokeROML(0x5555, 0xAA)
	c.PokeROML(0x2AAA, 0x55)
	c.PokeROML(0x5555, 0xA0)
	c.PokeROML(0x9000, 0xF0) // tries to set the upper nibble back: AND-only, cannot.

	if got := c.PeekROML(0x9000); got != 0x00 {
		t.Fatalf("byte after AND-only programs = %#02x, want 0x00", got)
	}
	if !fr.roml.LastProgramError() {
		t.Fatalf("expected LastProgramError after trying to set a cleared bit")
	}
	if fr.roml.state != flashByteProgramError {
		t.Fatalf("flash state after program = %v, want flashByteProgramError", fr.roml.state)
	}
}

func bytesOf(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}
