// Package assets loads the visual theme: a background colour and one sprite
// per entity kind. Frontends turn sprites into glyphs or textures; a theme
// that lacks a sprite for any kind is rejected at startup.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// ErrMissingSprite is returned when a theme has no sprite for a kind.
var ErrMissingSprite = errors.New("assets: missing sprite")

// ErrBadSprite is returned for unusable sprite definitions.
var ErrBadSprite = errors.New("assets: bad sprite")

const fileName = "theme.yaml"

// Sprite is the resolved visual for one kind.
type Sprite struct {
	Kind  sim.Kind
	Glyph rune
	Color core.Color
	RGBA  color.RGBA
	Image string // Absolute path to a PNG, empty to draw a filled square
}

// Theme is a fully resolved, validated theme.
type Theme struct {
	Background     core.Color
	BackgroundRGBA color.RGBA
	sprites        [sim.NumKinds]Sprite
}

// Sprite returns the visual for kind k.
func (t *Theme) Sprite(k sim.Kind) Sprite {
	if !k.Valid() {
		return Sprite{Kind: k, Glyph: '?'}
	}
	return t.sprites[k]
}

// themeFile is the on-disk YAML shape.
type themeFile struct {
	Background string                `yaml:"background"`
	Sprites    map[string]spriteFile `yaml:"sprites"`
}

type spriteFile struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Image string `yaml:"image"`
}

// Load loads and resolves the theme.
// Search order: customPath -> ~/.rps-arena/theme.yaml -> ./configs/theme.yaml -> embedded default.
// Unlike configuration, a theme found on disk that fails to resolve is an
// error rather than a reason to fall through.
func Load(customPath string) (*Theme, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	candidates := []string{filepath.Join("configs", fileName)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append([]string{filepath.Join(home, ".rps-arena", fileName)}, candidates...)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return loadFile(path)
		}
	}

	return Parse(defaultThemeYAML, "")
}

func loadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read theme %s: %w", path, err)
	}
	theme, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("assets: theme %s: %w", path, err)
	}
	return theme, nil
}

// Default returns the embedded default theme.
func Default() *Theme {
	theme, err := Parse(defaultThemeYAML, "")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded theme is invalid: %v", err))
	}
	return theme
}

// Parse decodes and resolves theme YAML. Relative image paths are resolved
// against baseDir and must exist.
func Parse(data []byte, baseDir string) (*Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse theme: %w", err)
	}

	bg, err := parseColor(f.Background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %v", ErrBadSprite, err)
	}
	theme := &Theme{
		Background:     core.Color(bg.Hex()),
		BackgroundRGBA: toRGBA(bg),
	}

	for name := range f.Sprites {
		if _, err := sim.ParseKind(name); err != nil {
			return nil, fmt.Errorf("%w: unknown kind %q", ErrBadSprite, name)
		}
	}

	for _, k := range sim.Kinds {
		sf, ok := f.Sprites[k.String()]
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrMissingSprite, k)
		}
		sprite, err := resolveSprite(k, sf, baseDir)
		if err != nil {
			return nil, err
		}
		theme.sprites[k] = sprite
	}

	return theme, nil
}

func resolveSprite(k sim.Kind, sf spriteFile, baseDir string) (Sprite, error) {
	if utf8.RuneCountInString(sf.Glyph) != 1 {
		return Sprite{}, fmt.Errorf("%w: %s glyph must be one character, got %q", ErrBadSprite, k, sf.Glyph)
	}
	glyph, _ := utf8.DecodeRuneInString(sf.Glyph)

	c, err := parseColor(sf.Color)
	if err != nil {
		return Sprite{}, fmt.Errorf("%w: %s color: %v", ErrBadSprite, k, err)
	}

	sprite := Sprite{
		Kind:  k,
		Glyph: glyph,
		Color: core.Color(c.Hex()),
		RGBA:  toRGBA(c),
	}

	if sf.Image != "" {
		path := sf.Image
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return Sprite{}, fmt.Errorf("%w: %s image: %w", ErrMissingSprite, k, err)
		}
		sprite.Image = path
	}

	return sprite, nil
}

func parseColor(s string) (colorful.Color, error) {
	if s == "" {
		return colorful.Color{}, errors.New("color is required")
	}
	return colorful.Hex(s)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
