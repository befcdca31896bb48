// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues.
//
// # Overview
//
// The numeric package contains the helper functions the voronoi library
// leans on wherever floating-point precision matters: epsilon-tolerant
// comparisons, precision adjustments, and the library-wide default
// tolerance used by every equality and zero test in the diagram
// construction.
//
// # Features
//
//   - Floating-Point Comparisons: Functions such as FloatEquals,
//     FloatGreaterThan, FloatLessThan, and their variants provide
//     robust comparisons between floating-point numbers using an epsilon
//     threshold to mitigate precision errors.
//
//   - Library Epsilon: GetEpsilon and SetEpsilon expose the tolerance used
//     by default throughout the library (1e-10). Inputs should lie in a
//     coordinate range where this tolerance is meaningful, roughly
//     |coordinate| < 1e6.
//
//   - Precision Adjustment: The SnapToEpsilon function allows
//     floating-point numbers to be snapped to the nearest whole number if
//     they are within an acceptable tolerance, reducing small precision
//     artifacts.
//
// # Usage
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric
