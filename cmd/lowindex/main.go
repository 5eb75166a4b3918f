// Command lowindex is the CLI front end for the pkg/lowindex search:
// enumerate permutation representations of a finitely presented group, or
// inspect the word-parsing and CPU-count helpers in isolation.
package main

import "github.com/unhyperbolic/low-index/cmd/lowindex/cmd"

func main() {
	cmd.Execute()
}
