package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmuldo/deltae"
)

var convertTo string

// convertCmd converts a single color between representations.
var convertCmd = &cobra.Command{
	Use:   "convert COLOR",
	Short: "Convert a color to another representation",
	Long: `Convert a color between the Lab, Lch, XYZ and RGB representations.

The input type comes from --type; Lab/XYZ conversions are anchored to the
D50 illuminant and RGB output uses the sRGB system.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaults()

		color, err := parseColor(colorType, args[0])
		if err != nil {
			return err
		}

		switch convertTo {
		case "lab":
			fmt.Printf("%.*v\n", precision, color.Lab())
		case "lch":
			fmt.Printf("%.*v\n", precision, color.Lab().Lch())
		case "xyz":
			fmt.Printf("%.*v\n", precision, color.Lab().Xyz())
		case "rgb":
			fmt.Printf("%v\n", color.Lab().Xyz().Rgb(deltae.SRgb))
		default:
			return fmt.Errorf("'%s' is not a supported color type", convertTo)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertTo, "to", "lch", "target type: lab, lch, xyz or rgb")
}
