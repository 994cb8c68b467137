package distill

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TensionMatrix holds the interfacial tension between every pair of lattice
// keys. Higher values mean stronger mutual repulsion. The matrix is kept
// symmetric: every write goes to both (a,b) and (b,a).
type TensionMatrix struct {
	v [NumKeys][NumKeys]float64
}

// DefaultTension returns the standard coefficients. Liquids repel Air and
// each other; a liquid is only weakly repelled by its own vapour.
func DefaultTension() TensionMatrix {
	var m TensionMatrix
	m.Set(KeyALiquid, KeyBLiquid, 0.6)
	m.Set(KeyALiquid, KeyAir, 1.2)
	m.Set(KeyBLiquid, KeyAir, 1.2)
	m.Set(KeyAGas, KeyAir, 0.2)
	m.Set(KeyBGas, KeyAir, 0.2)
	m.Set(KeyALiquid, KeyAGas, 0.3)
	m.Set(KeyBLiquid, KeyBGas, 0.3)
	m.Set(KeyALiquid, KeyBGas, 0.4)
	m.Set(KeyBLiquid, KeyAGas, 0.4)
	m.Set(KeyAGas, KeyBGas, 0.1)
	m.Set(KeyALiquid, KeyWall, 0.2)
	m.Set(KeyBLiquid, KeyWall, 0.2)
	m.Set(KeyAGas, KeyWall, 0.1)
	m.Set(KeyBGas, KeyWall, 0.1)
	return m
}

// Get returns the tension between a and b. Keys outside the known range come
// from unvalidated input and fall back to the neutral 0.5.
func (m *TensionMatrix) Get(a, b Key) float64 {
	if a >= numKeys || b >= numKeys {
		return fallbackTension
	}
	return m.v[a][b]
}

// Set writes the tension for the unordered pair {a, b}.
func (m *TensionMatrix) Set(a, b Key, value float64) {
	if a >= numKeys || b >= numKeys {
		return
	}
	m.v[a][b] = value
	m.v[b][a] = value
}

// SetNamed is Set addressed by key names, for text-based control surfaces.
func (m *TensionMatrix) SetNamed(a, b string, value float64) error {
	ka, err := ParseKey(a)
	if err != nil {
		return err
	}
	kb, err := ParseKey(b)
	if err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: tension %s/%s must be non-negative, got %g", ErrInvalidConfig, a, b, value)
	}
	m.Set(ka, kb, value)
	return nil
}

// Symmetric reports whether tension[a][b] == tension[b][a] for every pair.
func (m *TensionMatrix) Symmetric() bool {
	for a := 0; a < NumKeys; a++ {
		for b := a + 1; b < NumKeys; b++ {
			if m.v[a][b] != m.v[b][a] {
				return false
			}
		}
	}
	return true
}

// Zero clears every coefficient.
func (m *TensionMatrix) Zero() { m.v = [NumKeys][NumKeys]float64{} }

func (m *TensionMatrix) firstNegative() (Key, Key, bool) {
	for a := 0; a < NumKeys; a++ {
		for b := a; b < NumKeys; b++ {
			if m.v[a][b] < 0 {
				return Key(a), Key(b), true
			}
		}
	}
	return 0, 0, false
}

type tensionEntry struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Value float64 `yaml:"value"`
}

// MarshalYAML writes the upper triangle as a list of pairs. Every distinct
// pair is written; a key against itself only when non-zero.
func (m TensionMatrix) MarshalYAML() (interface{}, error) {
	var out []tensionEntry
	for a := 0; a < NumKeys; a++ {
		for b := a; b < NumKeys; b++ {
			if a == b && m.v[a][b] == 0 {
				continue
			}
			out = append(out, tensionEntry{A: Key(a).String(), B: Key(b).String(), Value: m.v[a][b]})
		}
	}
	return out, nil
}

// UnmarshalYAML applies a list of pairs on top of the current coefficients,
// so a preset only has to name the pairs it changes. Each entry must carry
// exactly the fields a, b and value.
func (m *TensionMatrix) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("tension line %d: expected a list of {a, b, value} entries", node.Line)
	}
	for _, item := range node.Content {
		e, err := decodeTensionEntry(item)
		if err != nil {
			return err
		}
		if err := m.SetNamed(e.A, e.B, e.Value); err != nil {
			return fmt.Errorf("tension line %d: %w", item.Line, err)
		}
	}
	return nil
}

// decodeTensionEntry walks one mapping node by hand: Node.Decode would use a
// fresh decoder that ignores the caller's KnownFields setting.
func decodeTensionEntry(n *yaml.Node) (tensionEntry, error) {
	var e tensionEntry
	if n.Kind != yaml.MappingNode {
		return e, fmt.Errorf("tension line %d: expected a mapping", n.Line)
	}
	var seenA, seenB, seenValue bool
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var err error
		switch key.Value {
		case "a":
			seenA = true
			err = val.Decode(&e.A)
		case "b":
			seenB = true
			err = val.Decode(&e.B)
		case "value":
			seenValue = true
			err = val.Decode(&e.Value)
		default:
			return e, fmt.Errorf("tension line %d: unknown field %q", key.Line, key.Value)
		}
		if err != nil {
			return e, fmt.Errorf("tension line %d: %w", val.Line, err)
		}
	}
	switch {
	case !seenA || !seenB:
		return e, fmt.Errorf("tension line %d: entry needs both a and b", n.Line)
	case !seenValue:
		return e, fmt.Errorf("tension line %d: entry %s/%s has no value", n.Line, e.A, e.B)
	}
	return e, nil
}
