package wgpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/cursor/render"
)

var (
	// ErrNilDevice is returned when creating an importer without a device.
	ErrNilDevice = errors.New("wgpu: device is nil")

	// ErrNilQueue is returned when creating an importer without a queue.
	ErrNilQueue = errors.New("wgpu: queue is nil")
)

// maxTextureDimension is the 2D texture limit guaranteed by default limits.
const maxTextureDimension = 8192

// Importer uploads cursor frames through a HAL queue.
//
// Importer is safe for concurrent use.
type Importer struct {
	device   hal.Device
	queue    hal.Queue
	logger   *slog.Logger
	imported atomic.Int64
}

// NewImporter creates an importer on device, uploading through queue.
func NewImporter(device hal.Device, queue hal.Queue) (*Importer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	return &Importer{
		device: device,
		queue:  queue,
		logger: slog.New(slog.DiscardHandler),
	}, nil
}

// SetLogger sets the logger for upload diagnostics. nil disables logging.
func (i *Importer) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	i.logger = l
}

// ImportRGBA creates a texture and view and uploads pix into it.
func (i *Importer) ImportRGBA(pix []byte, width, height int) (render.Texture, error) {
	if err := render.CheckRGBA(pix, width, height); err != nil {
		return nil, err
	}
	if width > maxTextureDimension || height > maxTextureDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", render.ErrImport, width, height, maxTextureDimension)
	}

	n := i.imported.Add(1)
	w, h := uint32(width), uint32(height) //nolint:gosec // G115: bounded by maxTextureDimension
	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	label := fmt.Sprintf("cursor_frame_%d", n)

	tex, err := i.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create texture: %w", render.ErrImport, err)
	}

	view, err := i.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		i.device.DestroyTexture(tex)
		return nil, fmt.Errorf("%w: create texture view: %w", render.ErrImport, err)
	}

	i.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
		},
		pix,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&size,
	)
	i.logger.Debug("cursor frame uploaded", "label", label, "width", width, "height", height)

	return &Texture{
		device: i.device,
		tex:    tex,
		view:   view,
		width:  width,
		height: height,
	}, nil
}

// Imported returns the number of textures created so far.
func (i *Importer) Imported() int {
	return int(i.imported.Load())
}

// Texture is a cursor frame on the GPU.
type Texture struct {
	device hal.Device
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int

	once      sync.Once
	destroyed atomic.Bool
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Raw returns the HAL texture, or nil after Destroy.
func (t *Texture) Raw() hal.Texture {
	if t.destroyed.Load() {
		return nil
	}
	return t.tex
}

// View returns the default texture view, or nil after Destroy.
func (t *Texture) View() hal.TextureView {
	if t.destroyed.Load() {
		return nil
	}
	return t.view
}

// Destroyed reports whether Destroy has been called.
func (t *Texture) Destroyed() bool {
	return t.destroyed.Load()
}

// Destroy releases the view and texture. Destroy is idempotent.
func (t *Texture) Destroy() {
	t.once.Do(func() {
		t.destroyed.Store(true)
		t.device.DestroyTextureView(t.view)
		t.device.DestroyTexture(t.tex)
	})
}

var (
	_ render.Importer = (*Importer)(nil)
	_ render.Texture  = (*Texture)(nil)
)
