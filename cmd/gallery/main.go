// Command gallery is a terminal host for the motion widgets. It steps the
// animation scheduler on a frame tick and paints sampled channel values.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
