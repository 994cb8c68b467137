package distill

// Statistics aggregates the grid after a step.
type Statistics struct {
	Frame   int
	Counts  [NumKeys]int
	AvgTemp float64
}

// Count returns the number of cells with the given key.
func (s Statistics) Count(k Key) int {
	if int(k) >= NumKeys {
		return 0
	}
	return s.Counts[k]
}

// Liquid counts A and B liquid cells.
func (s Statistics) Liquid() int { return s.Counts[KeyALiquid] + s.Counts[KeyBLiquid] }

// Gas counts A and B gas cells.
func (s Statistics) Gas() int { return s.Counts[KeyAGas] + s.Counts[KeyBGas] }

// CalculateStats counts cells by substance+phase and averages the
// temperature of every non-wall cell. An empty eligible set averages to 0.
func CalculateStats(g *Grid) Statistics {
	var s Statistics
	sum := 0.0
	n := 0
	for _, c := range g.cells {
		s.Counts[c.Key()]++
		if c.IsWall() {
			continue
		}
		sum += c.Temperature
		n++
	}
	if n > 0 {
		s.AvgTemp = sum / float64(n)
	}
	return s
}
