package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logging "royalty-viz/internal/infra/log"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontCandidates are tried in order when no explicit font path is configured.
var fontCandidates = []string{
	"etc/fonts/InterVariable.ttf",
	"etc/fonts/Inter-Regular.ttf",
	"~/Library/Fonts/Inter-Regular.ttf",
	"/usr/share/fonts/truetype/inter/Inter-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

type faceKey struct {
	size float64
	bold bool
}

// Fonts hands out font faces sized in points at a fixed DPI.
type Fonts struct {
	regular *truetype.Font
	bold    *truetype.Font
	dpi     float64
	faces   map[faceKey]font.Face

	// Source is the file the regular face came from, or "embedded".
	Source string
}

// LoadFonts resolves the chart typeface. An explicit path must parse; without
// one the installed candidates are tried and the embedded Go fonts are the
// fallback, so rendering never depends on what the host has installed.
func LoadFonts(path string, dpi float64) (*Fonts, error) {
	if path != "" {
		f, err := parseFontFile(expandHome(path))
		if err != nil {
			return nil, fmt.Errorf("failed to load font %s: %w", path, err)
		}
		logging.LogInfo("Loaded configured font", zap.String("path", path))
		return newFonts(f, loadBold(expandHome(path)), dpi, path), nil
	}

	for _, p := range InstalledFonts() {
		f, err := parseFontFile(p)
		if err != nil {
			logging.LogWarn("Font file exists but failed to load", zap.String("path", p), zap.Error(err))
			continue
		}
		logging.LogInfo("Loaded font", zap.String("path", p))
		return newFonts(f, loadBold(p), dpi, p), nil
	}

	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded regular font: %w", err)
	}
	logging.LogDebug("Using embedded Go fonts", zap.Int("paths_checked", len(fontCandidates)))
	return newFonts(regular, embeddedBold(), dpi, "embedded"), nil
}

// InstalledFonts lists the candidate font files present on this host, in
// search order.
func InstalledFonts() []string {
	var found []string
	for _, candidate := range fontCandidates {
		p := expandHome(candidate)
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		}
	}
	return found
}

// boldSiblings are the file names a bold companion of regular may have:
// Inter-Regular.ttf -> Inter-Bold.ttf, DejaVuSans.ttf -> DejaVuSans-Bold.ttf.
func boldSiblings(regular string) []string {
	ext := filepath.Ext(regular)
	base := strings.TrimSuffix(regular, ext)
	var out []string
	if trimmed, ok := strings.CutSuffix(base, "-Regular"); ok {
		out = append(out, trimmed+"-Bold"+ext)
	}
	return append(out, base+"-Bold"+ext)
}

// loadBold finds the bold companion of regular, or falls back to Go Bold.
func loadBold(regular string) *truetype.Font {
	for _, p := range boldSiblings(regular) {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		f, err := parseFontFile(p)
		if err != nil {
			logging.LogWarn("Bold font exists but failed to load", zap.String("path", p), zap.Error(err))
			continue
		}
		return f
	}
	return embeddedBold()
}

func embeddedBold() *truetype.Font {
	// gobold.TTF is a fixed, known-good asset
	f, _ := truetype.Parse(gobold.TTF)
	return f
}

func newFonts(regular, bold *truetype.Font, dpi float64, source string) *Fonts {
	return &Fonts{
		regular: regular,
		bold:    bold,
		dpi:     dpi,
		faces:   make(map[faceKey]font.Face),
		Source:  source,
	}
}

// Face returns a face of `size` points.
func (f *Fonts) Face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}
	ttf := f.regular
	if bold {
		ttf = f.bold
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     f.dpi,
		Hinting: font.HintingNone,
	})
	f.faces[key] = face
	return face
}

func parseFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
