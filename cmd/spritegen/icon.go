package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/config"
)

var (
	iconOut   string
	iconForce bool
	iconOpen  bool
	iconWatch bool
)

var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "render the stroked-curve icon",
	Long:  `render the stroked-curve icon: a cubic Bezier stroked with round caps, downsampled and cleaned into a crisp mask.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, renderJob{
			kind:   "icon",
			out:    iconOut,
			force:  iconForce,
			open:   iconOpen,
			watch:  iconWatch,
			render: renderIconAsset,
		})
	},
}

func renderIconAsset(cfg *config.Config) (*sprite.Pixmap, error) {
	p, err := cfg.IconParams()
	if err != nil {
		return nil, err
	}
	return sprite.RenderIcon(p)
}

func init() {
	rootCmd.AddCommand(iconCmd)
	iconCmd.Flags().StringVarP(&iconOut, "out", "o", "icon.png", "output PNG path")
	iconCmd.Flags().BoolVar(&iconForce, "force", false, "write even when the existing file is equivalent")
	iconCmd.Flags().BoolVar(&iconOpen, "open", false, "open the output file after writing")
	iconCmd.Flags().BoolVar(&iconWatch, "watch", false, "watch the config file and re-render on change")
}
