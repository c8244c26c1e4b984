package geoart

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// ExportBaseName is the default filename stem of exported images.
const ExportBaseName = "geometric-art"

// JPEGQuality is the default lossy export quality.
const JPEGQuality = 95

// EncodePNG writes the raster as a lossless PNG.
func (s *Session) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.pix.ToImage())
}

// EncodeJPG writes the raster as a JPEG with the given quality [1, 100].
// Out-of-range values fall back to JPEGQuality.
func (s *Session) EncodeJPG(w io.Writer, quality int) error {
	if quality < 1 || quality > 100 {
		quality = JPEGQuality
	}
	return jpeg.Encode(w, s.pix.ToImage(), &jpeg.Options{Quality: quality})
}

// EncodePDF writes a single-page PDF sized to the raster with the canvas
// embedded as a lossless image.
func (s *Session) EncodePDF(w io.Writer) error {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return err
	}

	wd, ht := float64(s.Width()), float64(s.Height())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", 0, 0, wd, ht, false, opts, 0, "")
	return pdf.Output(w)
}

// SavePNG saves the raster to a PNG file.
func (s *Session) SavePNG(path string) error {
	return saveFile(path, s.EncodePNG)
}

// SaveJPG saves the raster to a JPEG file at the default quality.
func (s *Session) SaveJPG(path string) error {
	return saveFile(path, func(w io.Writer) error {
		return s.EncodeJPG(w, JPEGQuality)
	})
}

// SavePDF saves the raster to a single-page PDF file.
func (s *Session) SavePDF(path string) error {
	return saveFile(path, s.EncodePDF)
}

func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
