package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go regular face at the given sizes.
func LoadDefaults(hudSize, titleSize float64) error {
	for name, size := range map[FontName]float64{
		HUD:   hudSize,
		Title: titleSize,
		Small: hudSize * 0.75,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
