package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/nsp/cmd/nsp"
	"github.com/arthur-debert/nsp/pkg/output"
)

func main() {
	rootCmd := nsp.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		r, rerr := output.NewRenderer(os.Stderr, noColor)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		_ = r.RenderError(err)
		os.Exit(1)
	}
}
