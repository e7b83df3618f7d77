// Command supervillain drives Monte Carlo chains of the 2D compact boson.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "supervillain:", err)
		os.Exit(exitCode(err))
	}
}
