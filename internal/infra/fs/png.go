package fs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

const inchesPerMeter = 39.37007874015748

// EnsureDir creates dir and its parents if missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// SavePNG encodes img as PNG with a pHYs chunk declaring dpi, writes it to
// dir/name and checks the result is non-empty. It returns the written path.
func SavePNG(dir, name string, img image.Image, dpi float64) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	data, err := EncodePNG(img, dpi)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if info.Size() == 0 {
		os.Remove(path)
		return "", fmt.Errorf("%s is empty after rendering", name)
	}
	return path, nil
}

// EncodePNG returns the PNG bytes of img with the physical pixel density set.
func EncodePNG(img image.Image, dpi float64) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	if dpi <= 0 {
		return buf.Bytes(), nil
	}
	return insertPHYs(buf.Bytes(), dpi)
}

// insertPHYs places a pHYs chunk directly after IHDR.
func insertPHYs(data []byte, dpi float64) ([]byte, error) {
	// 8 byte signature + IHDR (4 len + 4 type + 13 data + 4 crc)
	const ihdrEnd = 8 + 25
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return nil, fmt.Errorf("unexpected png layout")
	}

	ppm := uint32(math.Round(dpi * inchesPerMeter))
	chunk := make([]byte, 0, 21)
	chunk = binary.BigEndian.AppendUint32(chunk, 9)
	chunk = append(chunk, "pHYs"...)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = binary.BigEndian.AppendUint32(chunk, ppm)
	chunk = append(chunk, 1) // unit: meter
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

// ReadDPI returns the DPI declared by a PNG's pHYs chunk, or 0 when absent.
func ReadDPI(data []byte) float64 {
	pos := 8
	for pos+8 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		if typ == "pHYs" && n == 9 && pos+8+n <= len(data) {
			body := data[pos+8:]
			if body[8] != 1 {
				return 0
			}
			return math.Round(float64(binary.BigEndian.Uint32(body)) / inchesPerMeter)
		}
		if typ == "IDAT" || typ == "IEND" {
			return 0
		}
		pos += 12 + n
	}
	return 0
}

// ListFiles returns the regular file names in dir.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
