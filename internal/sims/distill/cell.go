package distill

import "fmt"

// Substance identifies what occupies a lattice site.
type Substance uint8

const (
	SubstanceAir Substance = iota
	SubstanceA
	SubstanceB
	SubstanceWall
)

func (s Substance) String() string {
	switch s {
	case SubstanceAir:
		return "air"
	case SubstanceA:
		return "a"
	case SubstanceB:
		return "b"
	case SubstanceWall:
		return "wall"
	default:
		return fmt.Sprintf("substance(%d)", uint8(s))
	}
}

// Phase is the state of aggregation of a substance-bearing cell.
type Phase uint8

const (
	PhaseLiquid Phase = iota
	PhaseGas
)

func (p Phase) String() string {
	if p == PhaseGas {
		return "gas"
	}
	return "liquid"
}

// Key is the combined substance+phase tag used for every coefficient lookup.
// Air is always keyed as a gas and Wall as a liquid; their phase field is
// never consulted otherwise.
type Key uint8

const (
	KeyALiquid Key = iota
	KeyAGas
	KeyBLiquid
	KeyBGas
	KeyAir
	KeyWall

	numKeys
)

// NumKeys is the number of distinct lattice keys.
const NumKeys = int(numKeys)

var keyNames = [numKeys]string{
	KeyALiquid: "a_liquid",
	KeyAGas:    "a_gas",
	KeyBLiquid: "b_liquid",
	KeyBGas:    "b_gas",
	KeyAir:     "air",
	KeyWall:    "wall",
}

func (k Key) String() string {
	if k < numKeys {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseKey resolves a key name such as "b_gas".
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return Key(k), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKey, name)
}

// Substance returns the substance a key belongs to.
func (k Key) Substance() Substance {
	switch k {
	case KeyALiquid, KeyAGas:
		return SubstanceA
	case KeyBLiquid, KeyBGas:
		return SubstanceB
	case KeyWall:
		return SubstanceWall
	default:
		return SubstanceAir
	}
}

// Cell is one lattice site.
type Cell struct {
	Substance   Substance
	Phase       Phase
	Temperature float64
	LatentHeat  float64
}

// Key returns the substance+phase tag of the cell.
func (c Cell) Key() Key {
	switch c.Substance {
	case SubstanceA:
		if c.Phase == PhaseGas {
			return KeyAGas
		}
		return KeyALiquid
	case SubstanceB:
		if c.Phase == PhaseGas {
			return KeyBGas
		}
		return KeyBLiquid
	case SubstanceWall:
		return KeyWall
	default:
		return KeyAir
	}
}

// IsFluid reports whether the cell takes part in the phase state machine.
func (c Cell) IsFluid() bool {
	return c.Substance == SubstanceA || c.Substance == SubstanceB
}

// IsWall reports whether the cell is an immovable, temperature-fixed site.
func (c Cell) IsWall() bool { return c.Substance == SubstanceWall }
