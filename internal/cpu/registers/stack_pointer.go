package registers

import "fmt"

// StackPointer is the 8-bit SP register. Its value always denotes an
// offset within the fixed stack page $0100-$01FF; Address() performs that
// widening so push/pull code never has to repeat the "| 0x0100" idiom.
type StackPointer struct {
	value uint8
}

// NewStackPointer returns a stack pointer initialised to val.
func NewStackPointer(val uint8) *StackPointer {
	return &StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Label returns the canonical register name.
func (sp StackPointer) Label() string { return "SP" }

// Value returns the raw 8-bit stack offset.
func (sp StackPointer) Value() uint8 { return sp.value }

// Address returns the current stack slot as a full 16-bit address within
// page 1.
func (sp StackPointer) Address() uint16 { return 0x0100 | uint16(sp.value) }

// Load sets the stack pointer directly (used by Reset and snapshot
// restore).
func (sp *StackPointer) Load(val uint8) { sp.value = val }

// Push decrements the pointer, wrapping within page 1, per the real 6510's
// lack of a stack-overflow check.
func (sp *StackPointer) Push() { sp.value-- }

// Pull increments the pointer, wrapping within page 1.
func (sp *StackPointer) Pull() { sp.value++ }
