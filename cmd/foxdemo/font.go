// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/foxos/fox"
	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/psf"
)

func init() {
	fontCmd.Flags().StringVarP(&fontOutput, `output`, `o`, `glyphs.png`, `PNG file to write`)
	rootCmd.AddCommand(fontCmd)
}

var fontCmd = &cobra.Command{
	Use:   `font [file.psf]`,
	Short: `render a glyph sheet`,
	Long:  `render every glyph of a PSF font (default: built-in) into a PNG`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(func() error { return glyphSheet(args) })
	},
}

var fontOutput string

const sheetColumns = 32

func glyphSheet(args []string) error {
	f := psf.Default()
	if len(args) == 1 {
		var err error
		if f, err = psf.Load(args[0]); err != nil {
			return errors.Wrap(err, 0)
		}
	}

	cellW, cellH := f.Width()+1, f.Height()+1
	rows := (f.NumGlyphs() + sheetColumns - 1) / sheetColumns
	dev := framebuffer.NewMemory(sheetColumns*cellW+1, rows*cellH+1)

	c := fox.NewCanvas(dev, fox.WithFont(f))
	defer c.Close()
	if err := c.StartFrame(true); err != nil {
		return errors.Wrap(err, 0)
	}
	c.SetBackground(fox.RGB(0x20, 0x20, 0x20))
	for i := 0; i < f.NumGlyphs(); i++ {
		x := 1 + (i%sheetColumns)*cellW
		y := 1 + (i/sheetColumns)*cellH
		c.DrawGlyph(x, y, i, fox.White, nil)
	}
	if err := c.EndFrame(); err != nil {
		return errors.Wrap(err, 0)
	}
	if err := c.SavePNG(fontOutput); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}
