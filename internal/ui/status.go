package ui

import (
	"fmt"
	"math"

	"github.com/msonrm/distillation-tower/internal/sims/distill"
)

// StatusLines formats a statistics readout for the overlay. The average
// temperature is rounded for display only.
func StatusLines(s distill.Statistics, running bool) []string {
	state := "stopped"
	if running {
		state = "running"
	}
	return []string{
		fmt.Sprintf("frame %d  %s", s.Frame, state),
		fmt.Sprintf("A liquid %d  gas %d", s.Count(distill.KeyALiquid), s.Count(distill.KeyAGas)),
		fmt.Sprintf("B liquid %d  gas %d", s.Count(distill.KeyBLiquid), s.Count(distill.KeyBGas)),
		fmt.Sprintf("avg %dC  air %d", int(math.Round(s.AvgTemp)), s.Count(distill.KeyAir)),
	}
}
