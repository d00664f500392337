package xcursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func frame(size, w, h, delay uint32, fill byte) Image {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = fill + byte(i%4)
	}
	return Image{Size: size, Width: w, Height: h, XHot: w / 2, YHot: h / 2, Delay: delay, Pixels: pix}
}

func encode(t *testing.T, images ...Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, images); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecodeSingleFrame(t *testing.T) {
	want := Image{Size: 1, Width: 1, Height: 1, Delay: 100, Pixels: []byte{0x11, 0x22, 0x33, 0xff}}
	data := encode(t, want)

	images, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("len(images) = %d, want 1", len(images))
	}
	got := images[0]
	if got.Width != 1 || got.Height != 1 || got.Delay != 100 || got.Size != 1 {
		t.Errorf("image = %+v, want 1x1 delay 100 size 1", got)
	}
	if !bytes.Equal(got.Pixels, want.Pixels) {
		t.Errorf("Pixels = %x, want %x", got.Pixels, want.Pixels)
	}
}

func TestDecodePixelOrder(t *testing.T) {
	data := encode(t, Image{Size: 1, Width: 1, Height: 1, Pixels: []byte{1, 2, 3, 4}})

	// On disk the pixel is one little-endian ARGB word: B, G, R, A.
	raw := data[len(data)-4:]
	if want := []byte{3, 2, 1, 4}; !bytes.Equal(raw, want) {
		t.Errorf("on-disk pixel = %v, want %v", raw, want)
	}
	if got := argbToRGBA(raw); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("argbToRGBA() = %v, want [1 2 3 4]", got)
	}
}

func TestDecodeAnimationOrder(t *testing.T) {
	data := encode(t,
		frame(24, 2, 2, 50, 0),
		frame(24, 2, 2, 60, 10),
		frame(24, 2, 2, 70, 20),
	)
	images, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for i, want := range []uint32{50, 60, 70} {
		if images[i].Delay != want {
			t.Errorf("images[%d].Delay = %d, want %d", i, images[i].Delay, want)
		}
	}
}

func TestDecodeSizeNearest(t *testing.T) {
	data := encode(t,
		frame(24, 24, 24, 10, 0),
		frame(24, 24, 24, 20, 0),
		frame(32, 32, 32, 10, 0),
		frame(48, 48, 48, 10, 0),
	)

	tests := []struct {
		size       int
		wantSize   uint32
		wantFrames int
	}{
		{24, 24, 2},
		{16, 24, 2},
		{30, 32, 1},
		{40, 32, 1}, // tie between 32 and 48 goes to the first seen
		{64, 48, 1},
	}
	for _, tt := range tests {
		frames, err := DecodeSize(data, tt.size)
		if err != nil {
			t.Fatalf("DecodeSize(%d) error = %v", tt.size, err)
		}
		if len(frames) != tt.wantFrames {
			t.Errorf("DecodeSize(%d) returned %d frames, want %d", tt.size, len(frames), tt.wantFrames)
		}
		for _, f := range frames {
			if f.Size != tt.wantSize {
				t.Errorf("DecodeSize(%d) frame size = %d, want %d", tt.size, f.Size, tt.wantSize)
			}
		}
	}
}

func TestSizes(t *testing.T) {
	images := []Image{{Size: 32}, {Size: 24}, {Size: 32}, {Size: 48}}
	got := Sizes(images)
	want := []uint32{32, 24, 48}
	if len(got) != len(want) {
		t.Fatalf("Sizes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sizes()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if NearestSize(nil, 24) != 0 {
		t.Error("NearestSize(nil) should be 0")
	}
}

func TestDecodeSkipsComments(t *testing.T) {
	data := encode(t, frame(24, 1, 1, 10, 0), frame(24, 1, 1, 20, 0))
	// Retag the second toc entry as a comment.
	binary.LittleEndian.PutUint32(data[fileHeaderSize+tocEntrySize:], CommentType)

	images, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(images) != 1 || images[0].Delay != 10 {
		t.Errorf("Decode() = %d images, want only the first frame", len(images))
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := func() []byte { return encode(t, frame(24, 2, 2, 10, 0)) }

	tests := []struct {
		name    string
		data    func() []byte
		wantErr error
	}{
		{
			name:    "empty",
			data:    func() []byte { return nil },
			wantErr: ErrTruncated,
		},
		{
			name: "bad magic",
			data: func() []byte {
				d := valid()
				copy(d, "Xcux")
				return d
			},
			wantErr: ErrBadMagic,
		},
		{
			name: "truncated toc",
			data: func() []byte {
				d := valid()
				binary.LittleEndian.PutUint32(d[12:], 1000)
				return d
			},
			wantErr: ErrTruncated,
		},
		{
			name:    "truncated pixels",
			data:    func() []byte { d := valid(); return d[:len(d)-3] },
			wantErr: ErrTruncated,
		},
		{
			name: "unsupported chunk",
			data: func() []byte {
				d := valid()
				binary.LittleEndian.PutUint32(d[fileHeaderSize:], 0xdeadbeef)
				return d
			},
			wantErr: ErrUnsupportedChunk,
		},
		{
			name: "hotspot outside image",
			data: func() []byte {
				img := frame(24, 2, 2, 10, 0)
				img.XHot = 9
				return encode(t, img)
			},
			wantErr: ErrBadImage,
		},
		{
			name: "chunk subtype mismatch",
			data: func() []byte {
				d := valid()
				chunk := fileHeaderSize + tocEntrySize
				binary.LittleEndian.PutUint32(d[chunk+8:], 48)
				return d
			},
			wantErr: ErrBadImage,
		},
		{
			name: "only comments",
			data: func() []byte {
				d := valid()
				binary.LittleEndian.PutUint32(d[fileHeaderSize:], CommentType)
				return d
			},
			wantErr: ErrNoImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images, err := Decode(tt.data())
			if err == nil {
				t.Fatalf("Decode() = %d images, want error", len(images))
			}
			if images != nil {
				t.Errorf("Decode() returned partial results on error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode() error = %v, want to match ErrMalformed", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Decode() error type = %T, want *ParseError", err)
			}
		})
	}
}

func TestEncodeRejectsBadPixels(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []Image{{Size: 1, Width: 2, Height: 2, Pixels: make([]byte, 3)}})
	if err == nil {
		t.Error("Encode() with short pixel buffer should fail")
	}
	if err := Encode(&buf, nil); !errors.Is(err, ErrNoImages) {
		t.Errorf("Encode(nil) error = %v, want ErrNoImages", err)
	}
}
