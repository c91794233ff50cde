// Package problems loads named root-finding problems from YAML or TOML
// files and solves them with the brent package.
//
// A problem set in YAML:
//
//	problems:
//	  - name: cubic
//	    expr: "x ** 3 - 2 * x ** 2 - x - 2"
//	    a: -5
//	    b: 5
//	  - name: step-tight
//	    expr: "x - 1.5"
//	    a: -100
//	    b: 100
//	    tolerance: 1e-12
//	    max_iter: 80
//
// The same in TOML uses [[problems]] tables with identical keys. Zero
// macheps, tolerance and max_iter fall back to the brent defaults.
package problems
