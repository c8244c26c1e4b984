package geoart

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func paintedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(320, 200)
	cfg := s.Config()
	cfg.Mode = ModeShape
	cfg.Shape = ShapeMandala
	s.SetConfig(cfg)
	s.PointerDown(160, 100)
	s.PointerUp()
	return s
}

func TestEncodePNG(t *testing.T) {
	s := paintedSession(t)
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("decoded size %dx%d, want 320x200", b.Dx(), b.Dy())
	}
}

func TestEncodeJPG(t *testing.T) {
	s := paintedSession(t)

	for _, quality := range []int{95, 0, 101, -7} {
		var buf bytes.Buffer
		if err := s.EncodeJPG(&buf, quality); err != nil {
			t.Fatalf("EncodeJPG(quality=%d) = %v", quality, err)
		}
		img, err := jpeg.Decode(&buf)
		if err != nil {
			t.Fatalf("decoding output at quality %d: %v", quality, err)
		}
		b := img.Bounds()
		if b.Dx() != 320 || b.Dy() != 200 {
			t.Errorf("decoded size %dx%d, want 320x200", b.Dx(), b.Dy())
		}
	}
}

func TestEncodePDF(t *testing.T) {
	s := paintedSession(t)
	var buf bytes.Buffer
	if err := s.EncodePDF(&buf); err != nil {
		t.Fatalf("EncodePDF() = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Errorf("output does not start with a PDF header: %q", buf.String()[:min(16, buf.Len())])
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Error("output missing the PDF trailer")
	}
}

func TestSaveFiles(t *testing.T) {
	s := paintedSession(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		save func(string) error
	}{
		{ExportBaseName + ".png", s.SavePNG},
		{ExportBaseName + ".jpg", s.SaveJPG},
		{ExportBaseName + ".pdf", s.SavePDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := tt.save(path); err != nil {
				t.Fatalf("save: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if info.Size() == 0 {
				t.Error("saved file is empty")
			}
		})
	}
}
