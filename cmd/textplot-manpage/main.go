package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/textplot/cmd/textplot"
	"github.com/arthur-debert/textplot/internal/version"
)

func main() {
	rootCmd := textplot.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TEXTPLOT",
		Section: "1",
		Source:  "textplot " + version.Version,
		Manual:  "textplot manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
