package main

import (
	"fmt"
	"log"

	"github.com/flosch/pongo2"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/deltae"
)

var (
	cfgFile   string
	method    string
	colorType string
	precision int
	template  string
)

// rootCmd computes the color difference between its two arguments.
var rootCmd = &cobra.Command{
	Use:   "deltae COLOR0 COLOR1",
	Short: "Calculate the Delta E between two colors",
	Long: `Calculate Delta E (color difference) between two colors in CIE Lab space.

Colors are comma-separated component triples, e.g. "89.73, 1.88, -6.96".
Methods: de2000 (default), de1976, de1994, de1994t, cmc1, cmc2.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaults()

		m, err := deltae.ParseMethod(method)
		if err != nil {
			return err
		}
		color0, err := parseColor(colorType, args[0])
		if err != nil {
			return err
		}
		color1, err := parseColor(colorType, args[1])
		if err != nil {
			return err
		}

		out, err := render(deltae.Delta(color0, color1, m))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.deltae.yaml)")
	rootCmd.PersistentFlags().StringVarP(&method, "method", "m", "", "delta e method")
	rootCmd.PersistentFlags().StringVarP(&colorType, "type", "t", "", "color type: lab, lch or xyz")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", 4, "decimal places in the output")
	rootCmd.PersistentFlags().StringVar(&template, "template", "", "pongo2 template for the output")
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".deltae")
	}

	viper.AutomaticEnv()
	// a missing config file just means defaults
	viper.ReadInConfig()
}

// setDefaults fills unset flags from the config, then falls back to the
// package defaults.
func setDefaults() {
	if method == "" {
		method = viper.GetString("method")
	}
	if method == "" {
		method = "de2000"
	}
	if colorType == "" {
		colorType = viper.GetString("type")
	}
	if colorType == "" {
		colorType = "lab"
	}
	if template == "" {
		template = viper.GetString("template")
	}
}

func parseColor(colorType, s string) (deltae.Color, error) {
	switch colorType {
	case "lab":
		lab, err := deltae.ParseLab(s)
		return lab, err
	case "lch":
		lch, err := deltae.ParseLch(s)
		return lch, err
	case "xyz":
		xyz, err := deltae.ParseXyz(s)
		return xyz, err
	}
	return nil, fmt.Errorf("'%s' is not a supported color type", colorType)
}

// render formats a result, either through the user's pongo2 template or as
// "<value> <method>" at the configured precision.
func render(de deltae.DeltaE) (string, error) {
	if template == "" {
		return fmt.Sprintf("%.*v", precision, de), nil
	}

	tpl, err := pongo2.FromString(template)
	if err != nil {
		return "", err
	}

	return tpl.Execute(pongo2.Context{
		"value":  de.Value(),
		"method": de.Method().String(),
	})
}
