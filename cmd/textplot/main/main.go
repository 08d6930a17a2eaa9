package main

import (
	"os"

	"github.com/arthur-debert/textplot/cmd/textplot"
)

func main() {
	os.Exit(textplot.Execute(os.Args[1:]))
}
