package main

import (
	"os"
	sys "os"
)

func run() int { return 0 }

func main() {
	defer func() {
		os.Exit(3)
	}()

	if run() != 0 {
		os.Exit(1) // want "do not call os.Exit inside main"
	}
	sys.Exit(2) // want "do not call os.Exit inside main"
}

func helper() {
	os.Exit(4)
}
