package koopman_test

import (
	"fmt"

	"github.com/katalvlaran/dipole/dynamics"
	"github.com/katalvlaran/dipole/koopman"
	"github.com/katalvlaran/dipole/ratmat"
)

// ExampleBuilder_Build assembles the truncated operator and reads its kernel.
func ExampleBuilder_Build() {
	b, _ := koopman.NewBuilder(dynamics.Collatz)
	m, _ := b.Build(10)

	a, _ := ratmat.SubFromIdentity(m)
	nullity, _, _ := ratmat.Nullspace(a)
	fmt.Println("dim ker(I − M_10) =", nullity)
	// Output:
	// dim ker(I − M_10) = 2
}
