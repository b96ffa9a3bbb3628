package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer cell or screen coordinate.
type Point struct {
	X int
	Y int
}
