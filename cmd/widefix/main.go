// Command widefix evaluates wide fixed-point expressions, generates
// shader constants and renders deep-zoom fractals.
package main

import "github.com/avdva/widefix/internal/cli"

func main() {
	cli.Execute()
}
