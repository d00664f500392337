package xcursor

import (
	"bufio"
	"fmt"
	"io"
)

// Encode writes images as an Xcursor file. Images are written in the order
// given, so frames of one nominal size should be contiguous and in
// animation order.
func Encode(w io.Writer, images []Image) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	for i, img := range images {
		if want := int(img.Width) * int(img.Height) * 4; len(img.Pixels) != want {
			return fmt.Errorf("xcursor: image %d has %d pixel bytes, want %d", i, len(img.Pixels), want)
		}
	}

	bw := bufio.NewWriter(w)
	put := func(v uint32) {
		var b [4]byte
		le.PutUint32(b[:], v)
		_, _ = bw.Write(b[:]) // bufio errors surface on Flush
	}

	_, _ = bw.WriteString(magic)
	put(fileHeaderSize)
	put(FileVersion)
	put(uint32(len(images))) //nolint:gosec // G115: bounded by caller memory

	pos := uint32(fileHeaderSize + len(images)*tocEntrySize) //nolint:gosec // G115
	for _, img := range images {
		put(ImageType)
		put(img.Size)
		put(pos)
		pos += imageHeaderSize + uint32(len(img.Pixels)) //nolint:gosec // G115
	}

	for _, img := range images {
		put(imageHeaderSize)
		put(ImageType)
		put(img.Size)
		put(ImageVersion)
		put(img.Width)
		put(img.Height)
		put(img.XHot)
		put(img.YHot)
		put(img.Delay)
		_, _ = bw.Write(rgbaToARGB(img.Pixels))
	}
	return bw.Flush()
}

// rgbaToARGB is the inverse of argbToRGBA.
func rgbaToARGB(src []byte) []byte {
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
	return dst
}
