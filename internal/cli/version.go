package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/avdva/widefix"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version information including the number layout this binary was built with.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "widefix version %s\n", Version)
			fmt.Fprintf(out, "Words: %d (%d integer bits, %d fractional bits)\n", widefix.Size, widefix.IntBits, widefix.FracBits)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
