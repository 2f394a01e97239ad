package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title FontName = "title"
	Item  FontName = "item"
	Hint  FontName = "hint"
	Debug FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with, using the Go
// fonts bundled with x/image.
func LoadDefaults(titleSize, itemSize, hintSize float64) error {
	if err := LoadFontWithSize(Title, gobold.TTF, titleSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Item, gobold.TTF, itemSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Hint, goregular.TTF, hintSize); err != nil {
		return err
	}
	return LoadFont(Debug, goregular.TTF)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
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
