package main

import (
	"os"

	"idx/cli"
)

func main() {
	cli.Start(os.Args)
}
