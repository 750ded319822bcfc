package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
)

var (
	convertWidth  int
	convertHeight int
	convertFrom   string
	convertTo     string
)

var convertCmd = &cobra.Command{
	Use:   "convert x y",
	Short: "Convert a point between coordinate spaces",
	Long: `Convert maps a point between the viewer's coordinate spaces:
  topleft     window pixels, origin top-left, y down
  pixel       window pixels, origin bottom-left, y up
  centered    pixels with the origin in the middle, y up
  normalized  [-1, 1] on both axes
The input is clamped to the source space first.`,
	Example: `  lineclip convert --width 800 --height 600 --from topleft --to centered 0 0`,
	Args:    cobra.ExactArgs(2),
	RunE:    runConvert,
}

func init() {
	convertCmd.Flags().IntVar(&convertWidth, "width", 1200, "Viewport width in pixels")
	convertCmd.Flags().IntVar(&convertHeight, "height", 800, "Viewport height in pixels")
	convertCmd.Flags().StringVar(&convertFrom, "from", coords.TopLeft.String(), "Source space")
	convertCmd.Flags().StringVar(&convertTo, "to", coords.Centered.String(), "Target space")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertWidth < 0 || convertHeight < 0 {
		return fmt.Errorf("viewport size must not be negative, got %dx%d", convertWidth, convertHeight)
	}
	from, err := coords.ParseSpace(convertFrom)
	if err != nil {
		return err
	}
	to, err := coords.ParseSpace(convertTo)
	if err != nil {
		return err
	}
	x, err := parseFloat(args[0])
	if err != nil {
		return err
	}
	y, err := parseFloat(args[1])
	if err != nil {
		return err
	}

	cc := coords.NewConverter(convertWidth, convertHeight)
	p, err := cc.Convert(geometry.NewPoint(x, y), from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s %s\n", from, geometry.NewPoint(x, y), to, p)
	return nil
}
