package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/gregtusar/datagen/pkg/price"
	"github.com/gregtusar/datagen/pkg/refdata"
)

var grid = decimal.NewFromInt(256)

func newPriceCmd() *cobra.Command {
	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Convert prices between decimal points and 32nds",
	}

	priceCmd.AddCommand(&cobra.Command{
		Use:   "encode <points>...",
		Short: "Encode decimal prices, e.g. 99.515625 -> 99-16+",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				s, err := encodeDecimal(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, s)
			}
			return nil
		},
	})

	priceCmd.AddCommand(&cobra.Command{
		Use:   "decode <price>...",
		Short: "Decode 32nds prices, e.g. 99-16+ -> 99.515625",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := price.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, decimal.NewFromFloat(p).String())
			}
			return nil
		},
	})

	return priceCmd
}

// encodeDecimal quantizes text to the 1/256 grid before converting to
// float64, so decimal inputs like 99.1 are not subject to binary rounding.
func encodeDecimal(text string) (string, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return "", fmt.Errorf("invalid price %q: %w", text, err)
	}
	p, _ := d.Mul(grid).Floor().Div(grid).Float64()
	return price.Format(p)
}

func newBondsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonds",
		Short: "List the Treasury reference data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CUSIP\tTICKER\tCOUPON\tMATURITY\tPV01")
			for _, b := range refdata.All() {
				fmt.Fprintf(w, "%s\t%s\t%s%%\t%s\t%s\n",
					b.ID, b.Ticker,
					b.Coupon.Shift(2).StringFixed(3),
					b.Maturity.Format("2006-01-02"),
					refdata.PV01(b.ID).String(),
				)
			}
			return w.Flush()
		},
	}
}
