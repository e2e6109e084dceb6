package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeWAV writes a 16-bit stereo PCM file with the given number of frames.
func writeWAV(t *testing.T, path string, sampleRate, frames int) {
	t.Helper()
	const channels, bits = 2, 16
	dataLen := frames * channels * bits / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bits))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("cannot write wav: %v", err)
	}
}

func TestDecodeWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cue.wav")
	writeWAV(t, path, 44100, 441)

	data, err := Decode(path, 44100)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if len(data) != 441*4 {
		t.Errorf("decoded %d bytes, expected %d", len(data), 441*4)
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	text := filepath.Join(dir, "cue.txt")
	if err := os.WriteFile(text, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "missing.wav"), "cannot read"},
		{"unsupported extension", text, "unsupported format"},
		{"corrupt wav", garbage, "cannot decode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.path, 44100)
			if err == nil {
				t.Fatal("Decode() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected to contain %q", err, tc.wantErr)
			}
		})
	}
}
