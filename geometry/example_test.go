package geometry_test

import (
	"fmt"

	"github.com/katalvlaran/atomcluster/geometry"
)

// ExampleDistance shows the distance between two atoms one bond apart.
func ExampleDistance() {
	a := geometry.Vec3{0, 0, 0}
	b := geometry.Vec3{1, 0, 0}
	fmt.Printf("%.2f\n", geometry.Distance(a, b))
	// Output: 1.00
}
