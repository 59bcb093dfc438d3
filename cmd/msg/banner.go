package main

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	bannerFont  string
	bannerColor string

	bannerCmd = &cobra.Command{
		Use:   "banner <text>",
		Short: "Print an ASCII-art banner",
		Long: `Print text as a large ASCII-art banner.

Banners are written directly to stdout without wrapping, since the art
relies on its own spacing. A figlet font and a colour can be chosen:

  msg banner "Deploy"
  msg banner --font alligator2 --color green "Release"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diag.Debugf("rendering banner: font=%q color=%q", bannerFont, bannerColor)
			if bannerColor != "" && !flagNoColor {
				figure.NewColorFigure(args[0], bannerFont, bannerColor, true).Print()
				return nil
			}
			figure.NewFigure(args[0], bannerFont, true).Print()
			return nil
		},
	}
)

func init() {
	bannerCmd.Flags().StringVar(&bannerFont, "font", "", "figlet font name (default: standard)")
	bannerCmd.Flags().StringVar(&bannerColor, "color", "", "banner colour (red, green, yellow, blue, purple, cyan, white, gray)")
}
