package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/cursor/render"
)

func TestSoftwareBackend(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != "software" {
		t.Errorf("Name() = %q, want %q", b.Name(), "software")
	}
	if b.Importer() != nil {
		t.Error("Importer() before Init should be nil")
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	tex, err := b.Importer().ImportRGBA(make([]byte, 4*4*4), 4, 4)
	if err != nil {
		t.Fatalf("ImportRGBA() error = %v", err)
	}
	if tex.Width() != 4 || tex.Height() != 4 {
		t.Errorf("texture size = %dx%d, want 4x4", tex.Width(), tex.Height())
	}
	b.Close()
	if b.Importer() != nil {
		t.Error("Importer() after Close should be nil")
	}
}

func TestSoftwareRegistered(t *testing.T) {
	if !IsRegistered(BackendSoftware) {
		t.Fatal("software backend not registered on import")
	}
	if !slices.Contains(Available(), BackendSoftware) {
		t.Errorf("Available() = %v, want software listed", Available())
	}
	b, err := Open(BackendSoftware)
	if err != nil {
		t.Fatalf("Open(software) error = %v", err)
	}
	defer b.Close()
	if b.Name() != BackendSoftware {
		t.Errorf("Open(software).Name() = %q", b.Name())
	}
}

// stubBackend is a backend with a configurable Init error.
type stubBackend struct {
	name    string
	initErr error
}

func (s *stubBackend) Name() string              { return s.name }
func (s *stubBackend) Init() error               { return s.initErr }
func (s *stubBackend) Close()                    {}
func (s *stubBackend) Importer() render.Importer { return render.NewSoftwareImporter() }

func TestDefaultPriority(t *testing.T) {
	t.Cleanup(func() { Unregister(BackendWGPU) })

	if b := Default(); b == nil || b.Name() != BackendSoftware {
		t.Fatalf("Default() without wgpu = %v, want software", b)
	}

	Register(BackendWGPU, func() RenderBackend { return &stubBackend{name: BackendWGPU} })
	if b := Default(); b == nil || b.Name() != BackendWGPU {
		t.Errorf("Default() = %v, want wgpu first", b)
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open("missing"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(missing) error = %v, want ErrBackendNotAvailable", err)
	}

	boom := errors.New("no adapter")
	Register("broken", func() RenderBackend { return &stubBackend{name: "broken", initErr: boom} })
	t.Cleanup(func() { Unregister("broken") })
	if _, err := Open("broken"); !errors.Is(err, boom) {
		t.Errorf("Open(broken) error = %v, want %v", err, boom)
	}
	if Get("missing") != nil {
		t.Error("Get(missing) should be nil")
	}
}
