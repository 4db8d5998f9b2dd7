package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	vellumerrors "github.com/vellum-ui/vellum/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┬  ┬  ┬ ┬┌┬┐
  ╚╗╔╝├┤ │  │  │ ││││
   ╚╝ └─┘┴─┘┴─┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "vellum",
		Short: "UI documents as data",
		Long: `Vellum serializes component trees to portable JSON documents
and reconstructs them through a typed component registry.

Commands work against the documents directory configured in
vellum.yaml (default: documents/).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		validateCmd(),
		inspectCmd(),
		galleryCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var verr *vellumerrors.VellumError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, verr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Vellum ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
