//go:build !ebiten

package window

import (
	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

// Run reports that the window driver was not compiled in
func Run(*game.Session, utils.Config) error {
	return ErrUnavailable
}
