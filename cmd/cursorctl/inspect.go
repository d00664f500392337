package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/cursor/theme"
	"github.com/gogpu/cursor/xcursor"
)

var inspectAll bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the frames of an Xcursor file",
	Long: `List the frames of an Xcursor file. Without an argument the default
cursor of the configured theme is inspected. Only frames of the nominal size
nearest --size are listed unless --all is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			r := newResolver(cfg)
			var res theme.Result
			if res, err = r.Resolve(cfg.Theme, theme.DefaultIcon); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Path, res.Theme)
				data, err = r.ReadFile(res.Path)
			}
		}
		if err != nil {
			return err
		}

		all, err := xcursor.Decode(data)
		if err != nil {
			return err
		}
		images := all
		if !inspectAll {
			if images, err = xcursor.DecodeSize(data, cfg.Size); err != nil {
				return err
			}
		}
		return printFrames(cmd.OutOrStdout(), images, xcursor.Sizes(all))
	},
}

func init() {
	inspectCmd.Flags().BoolVarP(&inspectAll, "all", "a", false, "list every nominal size")
	rootCmd.AddCommand(inspectCmd)
}

// printFrames writes one row per frame. END is the cumulative delay at
// which the frame's display window closes, per nominal size.
func printFrames(out io.Writer, images []xcursor.Image, sizes []uint32) error {
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = fmt.Sprint(s)
	}
	fmt.Fprintf(out, "sizes: %s\n", strings.Join(names, ", "))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSIZE\tDIMENSIONS\tHOTSPOT\tDELAY\tEND")
	fmt.Fprintln(w, "─\t────\t──────────\t───────\t─────\t───")
	end := make(map[uint32]uint64)
	for i, img := range images {
		end[img.Size] += uint64(img.Delay)
		fmt.Fprintf(w, "%d\t%d\t%dx%d\t%d,%d\t%dms\t%dms\n",
			i, img.Size, img.Width, img.Height, img.XHot, img.YHot, img.Delay, end[img.Size])
	}
	return w.Flush()
}
