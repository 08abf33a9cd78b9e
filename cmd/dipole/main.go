// Command dipole verifies the Dipole Conjecture for the accelerated 3x+1 map
// and runs its positive controls, using exact arithmetic end to end.
package main

func main() {
	Execute()
}
