package ratmat_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/dipole/ratmat"
)

// ExampleNullspace computes the exact kernel of a rank-1 matrix.
func ExampleNullspace() {
	a, _ := ratmat.NewDense(2, 2)
	_ = a.Set(0, 0, big.NewRat(1, 1))
	_ = a.Set(0, 1, big.NewRat(2, 1))
	_ = a.Set(1, 0, big.NewRat(2, 1))
	_ = a.Set(1, 1, big.NewRat(4, 1))

	nullity, basis, _ := ratmat.Nullspace(a)
	fmt.Println("nullity:", nullity)
	fmt.Println("basis:  ", basis[0])
	// Output:
	// nullity: 1
	// basis:   [-2, 1]
}

// ExampleSubFromIdentity forms I − M, the matrix the dipole check reduces.
func ExampleSubFromIdentity() {
	m, _ := ratmat.NewIdentity(2)
	_ = m.Set(0, 1, big.NewRat(1, 2))

	a, _ := ratmat.SubFromIdentity(m)
	fmt.Print(a)
	// Output:
	// [0, -1/2]
	// [0, 0]
}
