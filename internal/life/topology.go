package life

import (
	"fmt"
	"strings"
)

// Topology selects the adjacency scheme used to count neighbors.
// The values are the number of sides of the cell shape.
type Topology uint8

const (
	Triangle Topology = 3
	Square   Topology = 4
	Hexagon  Topology = 6
)

// Topologies lists every supported topology in cycling order.
var Topologies = []Topology{Square, Triangle, Hexagon}

// Valid reports whether t is one of the known topologies.
func (t Topology) Valid() bool {
	switch t {
	case Square, Triangle, Hexagon:
		return true
	}
	return false
}

// String returns the lowercase topology name.
func (t Topology) String() string {
	switch t {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Hexagon:
		return "hexagon"
	default:
		return fmt.Sprintf("topology(%d)", uint8(t))
	}
}

// Next returns the topology after t in Topologies, wrapping around.
func (t Topology) Next() Topology {
	for i, v := range Topologies {
		if v == t {
			return Topologies[(i+1)%len(Topologies)]
		}
	}
	return Square
}

// ParseTopology converts a name ("square", "triangle", "hexagon") to a
// Topology. Matching is case-insensitive.
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	case "hexagon", "hex":
		return Hexagon, nil
	}
	return 0, fmt.Errorf("life: unknown topology %q: %w", name, ErrInvalidTopology)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("life: %v: %w", t, ErrInvalidTopology)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	v, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
