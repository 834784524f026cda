package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [letters...]",
	Short: "Show the seven shapes and their rotations",
	Long: `Print each shape in its four orientations, colored as configured.

Each rotation step is RotateClockwise, starting from the spawn mask.

Examples:
  tetris shapes        # all seven
  tetris shapes T i    # letters are case-insensitive`,
	RunE: runShapes,
}

// attrs maps palette colors to terminal attributes.
var attrs = map[core.Color][]color.Attribute{
	core.ColorRed:           {color.FgRed},
	core.ColorGreen:         {color.FgGreen},
	core.ColorYellow:        {color.FgYellow},
	core.ColorBlue:          {color.FgBlue},
	core.ColorMagenta:       {color.FgMagenta},
	core.ColorCyan:          {color.FgCyan},
	core.ColorWhite:         {color.FgWhite},
	core.ColorBrightRed:     {color.FgHiRed},
	core.ColorBrightGreen:   {color.FgHiGreen},
	core.ColorBrightYellow:  {color.FgHiYellow},
	core.ColorBrightBlue:    {color.FgHiBlue},
	core.ColorBrightMagenta: {color.FgHiMagenta},
	core.ColorBrightCyan:    {color.FgHiCyan},
	core.ColorBrightWhite:   {color.FgHiWhite},
	core.ColorOrange:        {color.FgHiRed, color.Bold}, // no orange in 16 colors
	core.ColorGray:          {color.FgHiBlack},
}

func runShapes(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	colors, err := cfg.ShapeColors()
	if err != nil {
		return err
	}

	shapes := tetris.Shapes[:]
	if len(args) > 0 {
		shapes = make([]tetris.Shape, 0, len(args))
		for _, a := range args {
			s, err := tetris.ParseShape(a)
			if err != nil {
				return err
			}
			shapes = append(shapes, s)
		}
	}

	out := cmd.OutOrStdout()
	for _, s := range shapes {
		p, err := tetris.NewPiece(s, tetris.SpawnAnchor)
		if err != nil {
			return err
		}
		paint := color.New(attrs[colors[s]]...)

		fmt.Fprintf(out, "%s\n", s)
		var rows [4][]string
		for turn := 0; turn < 4; turn++ {
			mask := p.Mask()
			for r := range mask {
				var b strings.Builder
				for c := range mask[r] {
					if mask[r][c] {
						b.WriteString(paint.Sprint("██"))
					} else {
						b.WriteString(" ·")
					}
				}
				rows[r] = append(rows[r], b.String())
			}
			p.RotateClockwise()
		}
		for _, r := range rows {
			fmt.Fprintf(out, "  %s\n", strings.Join(r, "   "))
		}
		fmt.Fprintln(out)
	}
	return nil
}
