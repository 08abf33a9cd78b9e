package dynamics_test

import (
	"fmt"

	"github.com/katalvlaran/dipole/dynamics"
)

// ExampleMap_Orbit shows the known 5-cycle of the 5x+1 map.
func ExampleMap_Orbit() {
	m, _ := dynamics.NewVariant(dynamics.FiveX)
	orbit, _ := m.Orbit(1, 5)
	fmt.Println(orbit)
	// Output:
	// [1 3 8 4 2 1]
}

// ExampleMap_Apply evaluates the Syracuse map on an odd and an even input.
func ExampleMap_Apply() {
	m, _ := dynamics.NewVariant(dynamics.Collatz)
	odd, _ := m.Apply(7)   // (3*7+1)/2
	even, _ := m.Apply(10) // 10/2
	fmt.Println(odd, even)
	// Output:
	// 11 5
}
