package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/payload/cmd/payload"
	"github.com/arthur-debert/payload/pkg/ui"
)

func main() {
	rootCmd := payload.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}
