// Command owolayout loads owo markup, lays it out in a virtual viewport and
// prints the arranged component tree.
package main

import (
	"fmt"
	"os"

	"github.com/go-owo/owo/cmd/owolayout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
