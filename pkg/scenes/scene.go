package scenes

import (
	"github.com/gonewx/pong/pkg/game"
)

// Scene is an alias of game.Scene so callers only need to import scenes.
type Scene = game.Scene
