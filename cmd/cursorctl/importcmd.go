package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/spf13/cobra"

	"github.com/gogpu/cursor"
	"github.com/gogpu/cursor/backend"
	cursorwgpu "github.com/gogpu/cursor/backend/wgpu"
)

// backendNoop uploads through the wgpu HAL without a GPU.
const backendNoop = "wgpu-noop"

var importBackend string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the default cursor and import its frames through a renderer backend",
	Long: `Load the default cursor and import its frames through a renderer backend.

Backends: ` + strings.Join(append(backend.Available(), backendNoop), ", "),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		b, err := backend.Open(importBackend)
		if err != nil {
			return fmt.Errorf("backend %q: %w", importBackend, err)
		}
		defer b.Close()

		p, err := cursor.New(b.Importer(), cfg)
		if err != nil {
			return err
		}
		defer p.Close()

		tl := p.Timeline()
		fmt.Fprintf(cmd.OutOrStdout(), "backend:\t%s\nsource:\t%s\ntheme:\t%s\nframes:\t%d\nperiod:\t%dms\n",
			b.Name(), p.Source(), p.Theme(), tl.Len(), tl.Total())
		return nil
	},
}

func init() {
	backend.Register(backendNoop, newNoopBackend)
	importCmd.Flags().StringVarP(&importBackend, "backend", "b", backend.BackendSoftware, "renderer backend")
	rootCmd.AddCommand(importCmd)
}

var (
	noopOnce   sync.Once
	noopDevice hal.Device
	noopQueue  hal.Queue
	noopErr    error
)

// newNoopBackend opens the noop HAL device once per process.
func newNoopBackend() backend.RenderBackend {
	noopOnce.Do(func() {
		api := noop.API{}
		instance, err := api.CreateInstance(nil)
		if err != nil {
			noopErr = err
			return
		}
		adapters := instance.EnumerateAdapters(nil)
		if len(adapters) == 0 {
			noopErr = backend.ErrBackendNotAvailable
			return
		}
		openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
		if err != nil {
			noopErr = err
			return
		}
		noopDevice, noopQueue = openDev.Device, openDev.Queue
	})
	if noopErr != nil {
		cursor.Logger().Warn("noop GPU unavailable", "err", noopErr)
	}
	return &namedBackend{RenderBackend: cursorwgpu.NewBackend(noopDevice, noopQueue), name: backendNoop}
}

// namedBackend reports a registry name other than the wrapped backend's.
type namedBackend struct {
	backend.RenderBackend
	name string
}

func (b *namedBackend) Name() string { return b.name }
