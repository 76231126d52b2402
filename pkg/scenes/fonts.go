package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 字号
const (
	scoreFontSize = 48
	titleFontSize = 36
	hintFontSize  = 20
)

// sceneFonts 场景使用的字体
type sceneFonts struct {
	score *text.GoTextFace
	title *text.GoTextFace
	hint  *text.GoTextFace
}

// loadSceneFonts 从内置的 Go Regular 字体创建各字号的字体
func loadSceneFonts() (*sceneFonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	face := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	}

	return &sceneFonts{
		score: face(scoreFontSize),
		title: face(titleFontSize),
		hint:  face(hintFontSize),
	}, nil
}
