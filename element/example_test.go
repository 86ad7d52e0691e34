package element_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
)

// ExampleDrift2D builds a 2 m drift and prints its transfer matrix.
func ExampleDrift2D() {
	m := element.Drift2D(2)
	fmt.Println(mat.Formatted(m))
	// Output:
	// ⎡1  2⎤
	// ⎣0  1⎦
}

// ExampleThinQuad2D shows the focusing term of a 2 m focal-length quad.
func ExampleThinQuad2D() {
	m := element.ThinQuad2D(2)
	fmt.Printf("%.2f\n", m.At(1, 0))
	// Output: -0.50
}
