// nsp-manpage writes the nsp(1) man page to stdout
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/nsp/cmd/nsp"
	"github.com/arthur-debert/nsp/internal/version"
)

func main() {
	rootCmd := nsp.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "NSP",
		Section: "1",
		Source:  "nsp " + version.Version,
		Manual:  "nsp manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
