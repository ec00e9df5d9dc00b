package registers

import "fmt"

// ProgramCounter is the CPU's 16-bit instruction pointer.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter returns a ProgramCounter initialised to val.
func NewProgramCounter(val uint16) *ProgramCounter {
	return &ProgramCounter{value: val}
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current PC value.
func (pc *ProgramCounter) Address() uint16 { return pc.value }

// Load sets the PC directly, e.g. for JMP/JSR/branch/interrupt vectors.
func (pc *ProgramCounter) Load(val uint16) { pc.value = val }

// Add advances the PC by val, wrapping at 16 bits, and reports whether the
// increment crossed a page boundary's carry (used by the redundant-read
// penalty on indexed addressing modes - not applicable to wrap-around
// itself, only returned for symmetry with Register.Add).
func (pc *ProgramCounter) Add(val uint16) (carry bool) {
	v := pc.value
	pc.value += val
	return pc.value < v
}
