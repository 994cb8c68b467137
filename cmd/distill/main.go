// Command distill runs the lattice-gas distillation column.
package main

import "github.com/msonrm/distillation-tower/internal/cli"

func main() {
	cli.Execute()
}
