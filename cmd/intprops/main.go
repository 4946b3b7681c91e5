// Command intprops checks palindrome and prime properties of integers.
package main

import (
	"os"

	"github.com/katalvlaran/intprops/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
