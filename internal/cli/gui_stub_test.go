//go:build !ebiten

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msonrm/distillation-tower/internal/app"
)

func TestGUIWithoutEbitenTag(t *testing.T) {
	_, err := execute(t, append([]string{"gui", "--seed", "3"}, smallColumn...)...)
	assert.ErrorIs(t, err, app.ErrNoGUI)
}
