// Package wc contains the worst-case analyses: each function unrolls a
// fixed number of iterations of one first-order method on the class of
// L-QG⁺ convex functions, solves the resulting performance-estimation
// problem and returns the tight guarantee next to the closed-form
// theoretical bound.
//
// All analyses bound f(x_n) - f⋆ under the initial condition
// ‖x0 - x⋆‖² ≤ 1.
package wc

import "fmt"

// Result pairs the solved worst-case value with the theoretical bound
// it is compared against.
type Result struct {
	// WorstCase is the tight guarantee computed by the SDP.
	WorstCase float64
	// Theory is the closed-form reference bound, computed
	// independently of the SDP.
	Theory float64
}

func report(verbose int, method string, r Result) {
	if verbose == -1 {
		return
	}
	fmt.Printf("*** worst-case performance of %s ***\n", method)
	fmt.Printf("\tPEP guarantee:\t\t f(x_n)-f_* <= %.6g ||x_0 - x_*||^2\n", r.WorstCase)
	fmt.Printf("\tTheoretical guarantee:\t f(x_n)-f_* <= %.6g ||x_0 - x_*||^2\n", r.Theory)
}
