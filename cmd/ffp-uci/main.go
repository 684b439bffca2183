// Command ffp-uci runs the engine as a UCI protocol handler over stdio.
package main

import "github.com/dogw4t3r/ffp/internal/uci"

func main() {
	uci.New().Run()
}
