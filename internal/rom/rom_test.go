package rom_test

import (
	"bytes"
	"testing"

	"github.com/TimothyRLaMora734/virtualc64/internal/rom"
)

func TestLoadBasicAcceptsExactSize(t *testing.T) {
	data := make([]byte, rom.BasicSize)
	data[0] = 0x94
	img, err := rom.LoadBasic(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(img.Data) != rom.BasicSize {
		t.Fatalf("len(Data) = %d, want %d", len(img.Data), rom.BasicSize)
	}
	if img.Fingerprint == 0 {
		t.Fatalf("fingerprint not computed")
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	data := make([]byte, rom.BasicSize-1)
	if _, err := rom.LoadBasic(bytes.NewReader(data)); err == nil {
		t.Fatalf("expected error loading undersized image")
	}
}

func TestFingerprintIsDeterministic(t *testing.T) {
	data := []byte("deterministic content")
	if rom.Fingerprint(data) != rom.Fingerprint(append([]byte{}, data...)) {
		t.Fatalf("fingerprint not stable across equal content")
	}
}
