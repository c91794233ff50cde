// Command rootfind solves f(x) = 0 on a bracket with Brent's method.
//
//	rootfind solve --expr "x ** 3 - 2 * x ** 2 - x - 2" --a -5 --b 5
//	rootfind batch --file problems.yaml --format json
package main

import (
	"os"

	"github.com/katalvlaran/rootfind/cmd/rootfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
