package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/cursor"
	"github.com/gogpu/cursor/element"
	"github.com/gogpu/cursor/render"
)

var (
	snapshotAt  time.Duration
	snapshotOut string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the default cursor at a point in its animation to PNG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := cursor.New(render.NewSoftwareImporter(), cfg)
		if err != nil {
			return err
		}
		defer p.Close()

		img, err := snapshot(p, snapshotAt)
		if err != nil {
			return err
		}

		f, err := os.Create(snapshotOut)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", snapshotOut, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d at %dms (%s)\n",
			snapshotOut, img.Bounds().Dx(), img.Bounds().Dy(), p.Offset(), p.Source())
		return nil
	},
}

func init() {
	snapshotCmd.Flags().DurationVar(&snapshotAt, "at", 0, "elapsed animation time")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "output", "o", "cursor.png", "output file")
	rootCmd.AddCommand(snapshotCmd)
}

// snapshot draws the pointer's elements at elapsed time at into an image
// just large enough to hold them.
func snapshot(p *cursor.Pointer, at time.Duration) (*image.RGBA, error) {
	p.Tick(cursor.ClockFunc(func() time.Duration { return at }))

	elems := p.RenderElements(image.Point{}, 1, 1)
	defer element.ReleaseAll(elems)
	if len(elems) == 0 {
		return nil, fmt.Errorf("no cursor frame at %v: %w", at, cursor.ErrFrameLookupMiss)
	}

	b := element.Bounds(elems)
	target := render.NewPixmapTarget(b.Max.X, b.Max.Y)
	if err := element.DrawAll(target, elems); err != nil {
		return nil, err
	}
	return target.Image(), nil
}
