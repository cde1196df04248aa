// Plamix - a paint mixing calculator for scale modellers
//
// Plamix searches a hobby paint catalog for the blend that best
// reproduces a target colour and prints it as a mixing recipe.
package main

import "github.com/plamix/plamix/internal/cli"

func main() {
	cli.Execute()
}
