package ciahook_test

import (
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/ciahook"
)

func TestPortAReflectsDataDirectionAndOutputLatch(t *testing.T) {
	c := ciahook.New()
	c.Poke(0x02, 0x03) // DDRA: bits 0-1 output
	c.Poke(0x00, 0x01) // PRA: drive bit0 high, bit1 low
	if got := c.PortA(); got&0x03 != 0x01 {
		t.Fatalf("PortA low bits = %#02x, want 0x01", got&0x03)
	}
}

func TestTimerAUnderflowSetsPendingAndCanIRQ(t *testing.T) {
	c := ciahook.New()
	c.Poke(0x04, 0x02) // latch lo = 2
	c.Poke(0x05, 0x00) // latch hi = 0, loads timer since CRA stopped
	c.Poke(0x0E, 0x01) // CRA: start timer, continuous
	c.Poke(0x0D, 0x81) // unmask timer A IRQ source

	for i := 0; i < 3; i++ {
		c.Execute()
	}
	if !c.IRQLine() {
		t.Fatalf("IRQLine false after timer A underflow with source unmasked")
	}
}
