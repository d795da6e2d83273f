package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit"
)

var (
	randomCount int

	parseCmd = &cobra.Command{
		Use:   "parse <rut>",
		Short: "Parse a RUT string and verify its check digit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rut, err := rutkit.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed", "input", args[0], "number", rut.Number())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Number:", rut.Number())
			fmt.Fprintf(out, "DV: %c\n", rut.DV())
			fmt.Fprintln(out, "RUT:", rut.Render(outputFormat))
			return nil
		},
	}

	numberCmd = &cobra.Command{
		Use:   "number <n>",
		Short: "Compute the check digit for a bare number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid number %q: expected bare digits", args[0])
			}

			rut, err := rutkit.FromNumber(uint32(n))
			if err != nil {
				return err
			}
			logger.Debug("derived", "number", rut.Number(), "dv", string(rut.DV()))

			fmt.Fprintln(cmd.OutOrStdout(), rut.Render(outputFormat))
			return nil
		},
	}

	randomCmd = &cobra.Command{
		Use:   "random",
		Short: "Generate random valid RUTs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if randomCount < 1 {
				return fmt.Errorf("invalid count %d: must be at least 1", randomCount)
			}

			out := cmd.OutOrStdout()
			for range randomCount {
				fmt.Fprintln(out, rutkit.Randomize().Render(outputFormat))
			}
			return nil
		},
	}

	formatCmd = &cobra.Command{
		Use:   "format <rut>",
		Short: "Show every rendering of a RUT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rut, err := rutkit.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Dots:", rut.Render(rutkit.FormatDots))
			fmt.Fprintln(out, "Dash:", rut.Render(rutkit.FormatDash))
			fmt.Fprintln(out, "None:", rut.Render(rutkit.FormatNone))
			return nil
		},
	}
)

func init() {
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "how many RUTs to generate")

	rootCmd.AddCommand(parseCmd, numberCmd, randomCmd, formatCmd)
}
