// Command birkhoff decomposes doubly stochastic matrices from the command
// line and cuts releases of this module.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
