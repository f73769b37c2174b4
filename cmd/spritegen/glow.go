package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/config"
)

var (
	glowOut   string
	glowForce bool
	glowOpen  bool
	glowWatch bool
)

var glowCmd = &cobra.Command{
	Use:   "glow",
	Short: "render the radial glow sprite",
	Long:  `render the radial glow sprite: a soft white disk with a power falloff and Gaussian blur.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, renderJob{
			kind:   "glow",
			out:    glowOut,
			force:  glowForce,
			open:   glowOpen,
			watch:  glowWatch,
			render: renderGlowAsset,
		})
	},
}

func renderGlowAsset(cfg *config.Config) (*sprite.Pixmap, error) {
	p, err := cfg.GlowParams()
	if err != nil {
		return nil, err
	}
	return sprite.RenderGlow(p)
}

func init() {
	rootCmd.AddCommand(glowCmd)
	glowCmd.Flags().StringVarP(&glowOut, "out", "o", "glow.png", "output PNG path")
	glowCmd.Flags().BoolVar(&glowForce, "force", false, "write even when the existing file is equivalent")
	glowCmd.Flags().BoolVar(&glowOpen, "open", false, "open the output file after writing")
	glowCmd.Flags().BoolVar(&glowWatch, "watch", false, "watch the config file and re-render on change")
}
