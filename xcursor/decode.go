package xcursor

import (
	"encoding/binary"
)

const (
	magic = "Xcur"

	fileHeaderSize  = 16
	tocEntrySize    = 12
	imageHeaderSize = 36

	// maxTOC bounds the table of contents, as libXcursor does.
	maxTOC = 0x10000

	// maxImageSize bounds image width and height.
	maxImageSize = 0x7fff

	// ImageType tags image chunks in the TOC.
	ImageType uint32 = 0xfffd0002

	// CommentType tags comment chunks in the TOC. Comments are skipped.
	CommentType uint32 = 0xfffe0001

	// FileVersion is the file format version written by Encode.
	FileVersion uint32 = 0x10000

	// ImageVersion is the only image chunk version understood.
	ImageVersion uint32 = 1
)

// Image is one decoded cursor frame.
type Image struct {
	// Size is the nominal size the image was designed for.
	Size uint32

	// Width and Height are the pixel dimensions.
	Width  uint32
	Height uint32

	// XHot and YHot locate the hotspot from the top-left corner.
	XHot uint32
	YHot uint32

	// Delay is the display duration of this frame in milliseconds.
	Delay uint32

	// Pixels holds Width*Height RGBA8 pixels, premultiplied.
	Pixels []byte
}

type tocEntry struct {
	typ      uint32
	subtype  uint32
	position uint32
}

var le = binary.LittleEndian

// Decode parses an Xcursor file and returns every image in file order.
func Decode(data []byte) ([]Image, error) {
	toc, err := readTOC(data)
	if err != nil {
		return nil, err
	}

	var images []Image
	for i, e := range toc {
		switch e.typ {
		case ImageType:
			img, err := readImage(data, e)
			if err != nil {
				return nil, err
			}
			images = append(images, img)
		case CommentType:
			continue
		default:
			off := int64(fileHeaderSize + i*tocEntrySize)
			return nil, parseErr(off, ErrUnsupportedChunk, "type %#x", e.typ)
		}
	}
	if len(images) == 0 {
		return nil, parseErr(0, ErrNoImages, "")
	}
	return images, nil
}

// DecodeSize parses an Xcursor file and returns the frames of the nominal
// size nearest to size, in file order.
func DecodeSize(data []byte, size int) ([]Image, error) {
	images, err := Decode(data)
	if err != nil {
		return nil, err
	}
	best := NearestSize(images, size)

	frames := make([]Image, 0, len(images))
	for _, img := range images {
		if img.Size == best {
			frames = append(frames, img)
		}
	}
	return frames, nil
}

// NearestSize returns the nominal size in images closest to size.
// Ties go to the size seen first. It returns 0 for an empty slice.
func NearestSize(images []Image, size int) uint32 {
	var (
		best     uint32
		bestDist = -1
	)
	for _, img := range images {
		d := int(img.Size) - size
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = img.Size, d
		}
	}
	return best
}

// Sizes returns the distinct nominal sizes in images, in file order.
func Sizes(images []Image) []uint32 {
	var sizes []uint32
	seen := make(map[uint32]bool)
	for _, img := range images {
		if !seen[img.Size] {
			seen[img.Size] = true
			sizes = append(sizes, img.Size)
		}
	}
	return sizes
}

func readTOC(data []byte) ([]tocEntry, error) {
	if len(data) < fileHeaderSize {
		return nil, parseErr(0, ErrTruncated, "file header needs %d bytes, have %d", fileHeaderSize, len(data))
	}
	if string(data[:4]) != magic {
		return nil, parseErr(0, ErrBadMagic, "%q", data[:4])
	}

	headerSize := le.Uint32(data[4:])
	ntoc := le.Uint32(data[12:])
	if headerSize < fileHeaderSize {
		return nil, parseErr(4, ErrTruncated, "header size %d", headerSize)
	}
	if ntoc > maxTOC {
		return nil, parseErr(12, ErrBadImage, "toc count %d exceeds %d", ntoc, maxTOC)
	}

	start := uint64(headerSize)
	end := start + uint64(ntoc)*tocEntrySize
	if end > uint64(len(data)) {
		return nil, parseErr(int64(start), ErrTruncated, "toc of %d entries", ntoc)
	}

	toc := make([]tocEntry, ntoc)
	for i := range toc {
		b := data[start+uint64(i)*tocEntrySize:]
		toc[i] = tocEntry{
			typ:      le.Uint32(b[0:]),
			subtype:  le.Uint32(b[4:]),
			position: le.Uint32(b[8:]),
		}
	}
	return toc, nil
}

func readImage(data []byte, e tocEntry) (Image, error) {
	off := int64(e.position)
	if uint64(e.position)+imageHeaderSize > uint64(len(data)) {
		return Image{}, parseErr(off, ErrTruncated, "image header")
	}
	b := data[e.position:]

	var (
		headerSize = le.Uint32(b[0:])
		typ        = le.Uint32(b[4:])
		subtype    = le.Uint32(b[8:])
		version    = le.Uint32(b[12:])
	)
	switch {
	case headerSize != imageHeaderSize:
		return Image{}, parseErr(off, ErrBadImage, "header size %d", headerSize)
	case typ != e.typ || subtype != e.subtype:
		return Image{}, parseErr(off, ErrBadImage, "chunk %#x/%d does not match toc %#x/%d", typ, subtype, e.typ, e.subtype)
	case version != ImageVersion:
		return Image{}, parseErr(off, ErrBadImage, "version %d", version)
	}

	img := Image{
		Size:   subtype,
		Width:  le.Uint32(b[16:]),
		Height: le.Uint32(b[20:]),
		XHot:   le.Uint32(b[24:]),
		YHot:   le.Uint32(b[28:]),
		Delay:  le.Uint32(b[32:]),
	}
	switch {
	case img.Width == 0 || img.Width > maxImageSize || img.Height == 0 || img.Height > maxImageSize:
		return Image{}, parseErr(off, ErrBadImage, "size %dx%d", img.Width, img.Height)
	case img.XHot > img.Width || img.YHot > img.Height:
		return Image{}, parseErr(off, ErrBadImage, "hotspot (%d,%d) outside %dx%d", img.XHot, img.YHot, img.Width, img.Height)
	}

	n := uint64(img.Width) * uint64(img.Height) * 4
	if imageHeaderSize+n > uint64(len(b)) {
		return Image{}, parseErr(off, ErrTruncated, "%dx%d pixels", img.Width, img.Height)
	}
	img.Pixels = argbToRGBA(b[imageHeaderSize : imageHeaderSize+n])
	return img, nil
}

// argbToRGBA converts little-endian ARGB32 words to R, G, B, A bytes.
func argbToRGBA(src []byte) []byte {
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += 4 {
		// In memory an ARGB32 word is B, G, R, A.
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
	return dst
}
