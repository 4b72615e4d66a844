// Command ryufmt formats a single float64 through the ryu package, useful
// for poking at the shortest-decimal output or the fixed-buffer truncation
// contract from a shell.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gofloat/ryu"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		value   float64
		format  string
		bufSize int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "ryufmt",
		Short: "Format a float64 as shortest round-trippable decimal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return errors.Wrap(err, "ryufmt: building logger")
				}
				defer logger.Sync() //nolint:errcheck
				ryu.SetDebugLogger(logger.Sugar())
			}

			if len(format) != 1 {
				return errors.Errorf("ryufmt: --format must be a single byte, got %q", format)
			}
			fb := format[0]
			if fb != 'e' && fb != 'E' && fb != 'f' {
				return errors.Errorf("ryufmt: --format must be one of e, E, f, got %q", format)
			}

			if bufSize <= 0 {
				fmt.Println(ryu.FormatFloat(value, fb))
				return nil
			}

			buf := make([]byte, bufSize)
			n := ryu.WriteFloat(buf, value, fb)
			written := buf[:minInt(n, len(buf)-1)]
			fmt.Printf("wrote=%q full_len=%d truncated=%t\n", written, n, n > len(buf)-1)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&value, "value", 0, "float64 value to format")
	flags.StringVar(&format, "format", "f", "output format: e, E, or f")
	flags.IntVar(&bufSize, "bufsize", 0, "fixed buffer size to drive through WriteFloat (0 = use FormatFloat, unbounded)")
	flags.BoolVar(&verbose, "verbose", false, "log the internal Ryū decimal result for this conversion")

	return cmd
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
