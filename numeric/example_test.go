package numeric_test

import (
	"fmt"

	"github.com/mikenye/voronoi/numeric"
)

func ExampleFloatEquals() {
	a := 0.3333333
	b := 1.0 / 3.0
	epsilon := 1e-7

	fmt.Printf("%.7f == 1/3 without epsilon: %t\n", a, a == b)
	fmt.Printf("%.7f == 1/3 with epsilon of %.7f: %t\n", a, epsilon, numeric.FloatEquals(a, b, epsilon))

	// Output:
	// 0.3333333 == 1/3 without epsilon: false
	// 0.3333333 == 1/3 with epsilon of 0.0000001: true
}

func ExampleSnapToEpsilon() {
	value := 0.9999999999999999
	fmt.Println(numeric.SnapToEpsilon(value, 1e-10))

	// Output:
	// 1
}
