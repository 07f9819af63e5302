// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/foxos/fox"
	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/psf"
)

func init() {
	drawCmd.Flags().StringVar(&drawDevice, `device`, os.Getenv(`FOX_DEVICE`), `backend name (default: best available, or $FOX_DEVICE)`)
	drawCmd.Flags().IntVar(&drawWidth, `width`, 0, `screen width for sized backends`)
	drawCmd.Flags().IntVar(&drawHeight, `height`, 0, `screen height for sized backends`)
	drawCmd.Flags().IntVar(&drawScale, `scale`, 1, `integer upscaling of sixel and PNG output`)
	drawCmd.Flags().StringVarP(&drawOutput, `output`, `o`, ``, `also save the frame as PNG`)
	drawCmd.Flags().StringVar(&drawFont, `font`, ``, `PSF font file (default: built-in)`)
	drawCmd.Flags().DurationVar(&drawHold, `hold`, 0, `keep the frame on screen before exiting (0: wait for a key on interactive devices)`)
	rootCmd.AddCommand(drawCmd)
}

var drawCmd = &cobra.Command{
	Use:   `draw`,
	Short: `draw the demo scene`,
	Long:  `draw the demo scene on a framebuffer device`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(drawDemo)
	},
}

var (
	drawDevice string
	drawWidth  int
	drawHeight int
	drawScale  int
	drawOutput string
	drawFont   string
	drawHold   time.Duration
)

func drawDemo() error {
	opts := []fox.CanvasOption{
		fox.WithBackend(drawDevice),
		fox.WithDeviceOptions(framebuffer.Options{
			Width:  drawWidth,
			Height: drawHeight,
			Scale:  drawScale,
		}),
	}
	if drawFont != `` {
		f, err := psf.Load(drawFont)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		opts = append(opts, fox.WithFont(f))
	}

	c := fox.NewCanvas(nil, opts...)
	defer c.Close()

	if err := c.StartFrame(true); err != nil {
		return errors.Wrap(err, 0)
	}
	drawScene(c)
	if err := c.EndFrame(); err != nil {
		return errors.Wrap(err, 0)
	}

	if drawOutput != `` {
		img := c.Snapshot()
		if drawScale > 1 {
			b := img.Bounds()
			scaled := imaging.Resize(img, b.Dx()*drawScale, b.Dy()*drawScale, imaging.NearestNeighbor)
			if err := imaging.Save(scaled, drawOutput); err != nil {
				return errors.Wrap(err, 0)
			}
		} else if err := c.SavePNG(drawOutput); err != nil {
			return errors.Wrap(err, 0)
		}
	}

	hold(c.Device(), drawHold)
	return nil
}

// keyWaiter is implemented by devices that take over the terminal and wipe
// it on Close.
type keyWaiter interface {
	WaitKey()
}

// hold keeps the frame visible for d, or until a key press on interactive
// devices when d is 0.
func hold(dev framebuffer.Device, d time.Duration) {
	if d > 0 {
		time.Sleep(d)
		return
	}
	if w, ok := dev.(keyWaiter); ok {
		w.WaitKey()
	}
}

// drawScene draws every primitive, scaled to the canvas size.
func drawScene(c *fox.Canvas) {
	w, h := c.Width(), c.Height()

	c.SetBackground(fox.RGB(0x10, 0x18, 0x30))

	// gradient bands
	bands := 16
	for i := 0; i < bands; i++ {
		shade := uint8(0x20 + i*8)
		c.DrawRect(0, h-h/8+i*(h/8)/bands, w, (h/8)/bands+1, fox.RGB(0x10, shade/2, shade))
	}

	c.DrawRectOutline(0, 0, w, h, fox.White)

	r := min(w, h) / 8
	c.DrawCircle(w/4, h/3, r, fox.Red)
	c.DrawCircle(w/4+r, h/3, r, fox.Green)
	c.DrawCircleOutline(w/4+r/2, h/3+r, r, fox.Blue)

	c.DrawRect(w/2, h/6, w/4, h/5, fox.Hex(`#fc0`))
	c.DrawRectOutline(w/2-2, h/6-2, w/4+4, h/5+4, fox.White)

	// fan of lines
	ox, oy := w*3/4, h*2/3
	for i := 0; i <= 8; i++ {
		c.DrawLine(ox, oy, ox-w/5+i*(w/5)/4, oy-h/4, fox.Cyan)
	}

	c.DrawString(8, 8, "fox framebuffer demo\nshapes + bitmap text", fox.White, nil)
}
