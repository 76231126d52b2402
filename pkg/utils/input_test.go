package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// pressedKeys 返回只认指定按键的查询函数
func pressedKeys(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestDirectionKeys(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		wantUp   bool
		wantDown bool
	}{
		{"nothing", nil, false, false},
		{"W", []ebiten.Key{ebiten.KeyW}, true, false},
		{"arrow up", []ebiten.Key{ebiten.KeyArrowUp}, true, false},
		{"S", []ebiten.Key{ebiten.KeyS}, false, true},
		{"arrow down", []ebiten.Key{ebiten.KeyArrowDown}, false, true},
		{"both", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowDown}, true, true},
		{"unrelated", []ebiten.Key{ebiten.KeyA, ebiten.KeySpace}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, down := DirectionKeys(pressedKeys(tt.pressed...))
			if up != tt.wantUp || down != tt.wantDown {
				t.Errorf("DirectionKeys: got (%v, %v), want (%v, %v)", up, down, tt.wantUp, tt.wantDown)
			}
		})
	}
}
