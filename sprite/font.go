package sprite

import (
	"fmt"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Regular is the UI font. The Go regular face ships with x/image, so
// no font asset needs embedding.
var Regular *opentype.Font

func loadFont() (err error) {
	Regular, err = opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parsing goregular: %w", err)
	}
	return nil
}
