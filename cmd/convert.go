package main

import (
	"context"
	"fmt"
	"io"

	"ipconv/internal/converter"
	"ipconv/pkg/domain"
	"ipconv/pkg/serrors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	labelColor = color.New(color.FgCyan)            //nolint: gochecknoglobals
	errorColor = color.New(color.FgRed, color.Bold) //nolint: gochecknoglobals
)

func convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Converts a single address, or a binary string with --binary",
		Example: "  ipconv convert 192.168.1.1\n" +
			"  ipconv convert --binary 11000000.10101000.00000001.00000001",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			binary, _ := cmd.Flags().GetBool("binary")

			return runConvert(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
				converter.New(nil), args[0], binary)
		},
	}

	cmd.Flags().BoolP("binary", "b", false, "Treat the value as a 32-bit binary string")

	return cmd
}

// runConvert prints both representations of value to out. Invalid input is
// reported on errOut with its advisory message and returned as an error.
func runConvert(ctx context.Context, out, errOut io.Writer, conv converter.Converter, value string, binary bool) error {
	var (
		res *domain.Conversion
		err error
	)
	if binary {
		res, err = conv.BinaryToAddress(ctx, value)
	} else {
		res, err = conv.AddressToBinary(ctx, value)
	}
	if err != nil {
		errorColor.Fprintln(errOut, serrors.MessageOf(err, err.Error())) //nolint: errcheck

		return err //nolint: wrapcheck
	}

	labelColor.Fprint(out, "address ") //nolint: errcheck
	fmt.Fprintln(out, res.Address)
	labelColor.Fprint(out, "binary  ") //nolint: errcheck
	fmt.Fprintln(out, res.Display)

	return nil
}
