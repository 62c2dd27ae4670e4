package ltdc

// PixelFormat identifies one of the eight layer pixel encodings
// (pixel format register values 0..7).
type PixelFormat uint8

const (
	PixelFormatARGB8888 PixelFormat = iota
	PixelFormatRGB888
	PixelFormatRGB565
	PixelFormatARGB1555
	PixelFormatARGB4444
	PixelFormatL8
	PixelFormatAL44
	PixelFormatAL88
)

var pixelFormatBits = [MaxPixelFormatID + 1]uint8{
	32, // ARGB-8888
	24, // RGB-888
	16, // RGB-565
	16, // ARGB-1555
	16, // ARGB-4444
	8,  // L-8
	8,  // AL-44
	16, // AL-88
}

// BitsPerPixel returns the storage size of one pixel in the given
// format.
func BitsPerPixel(fmt PixelFormat) int {
	assert(fmt <= MaxPixelFormatID, badPixelFormat)
	return int(pixelFormatBits[fmt])
}

// BytesPerPixel returns the storage size of one pixel in bytes.
func BytesPerPixel(fmt PixelFormat) int {
	return BitsPerPixel(fmt) >> 3
}

// FromARGB8888 converts an ARGB-8888 color into the raw pixel value
// of the given format. Channels are truncated to the destination bit
// depth.
func FromARGB8888(c Color, fmt PixelFormat) Color {
	switch fmt {
	case PixelFormatARGB8888:
		return c
	case PixelFormatRGB888:
		return c & 0x00FFFFFF
	case PixelFormatRGB565:
		return (c&0x000000F8)>>(8-5) |
			(c&0x0000FC00)>>(16-11) |
			(c&0x00F80000)>>(24-16)
	case PixelFormatARGB1555:
		return (c&0x000000F8)>>(8-5) |
			(c&0x0000F800)>>(16-10) |
			(c&0x00F80000)>>(24-15) |
			(c&0x80000000)>>(32-16)
	case PixelFormatARGB4444:
		return (c&0x000000F0)>>(8-4) |
			(c&0x0000F000)>>(16-8) |
			(c&0x00F00000)>>(24-12) |
			(c&0xF0000000)>>(32-16)
	case PixelFormatL8:
		return c & 0x000000FF
	case PixelFormatAL44:
		return (c&0x000000F0)>>(8-4) |
			(c&0xF0000000)>>(32-8)
	case PixelFormatAL88:
		return (c&0x000000FF)>>(8-8) |
			(c&0xFF000000)>>(32-16)
	}
	panic(badPixelFormat)
}

// ToARGB8888 expands a raw pixel value of the given format into
// ARGB-8888. High channel bits are replicated into the vacated low
// bits so saturated channels stay saturated (0x1F green expands to
// 0xFF, not 0xF8).
func ToARGB8888(c Color, fmt PixelFormat) Color {
	switch fmt {
	case PixelFormatARGB8888:
		return c
	case PixelFormatRGB888:
		return c&0x00FFFFFF | 0xFF000000
	case PixelFormatRGB565:
		out := Color(0xFF000000)
		if c&0x001F != 0 {
			out |= (c&0x001F)<<(8-5) | 0x00000007
		}
		if c&0x07E0 != 0 {
			out |= (c&0x07E0)<<(16-11) | 0x00000300
		}
		if c&0xF800 != 0 {
			out |= (c&0xF800)<<(24-16) | 0x00070000
		}
		return out
	case PixelFormatARGB1555:
		out := Color(0)
		if c&0x001F != 0 {
			out |= (c&0x001F)<<(8-5) | 0x00000007
		}
		if c&0x03E0 != 0 {
			out |= (c&0x03E0)<<(16-10) | 0x00000700
		}
		if c&0x7C00 != 0 {
			out |= (c&0x7C00)<<(24-15) | 0x00070000
		}
		if c&0x8000 != 0 {
			out |= 0xFF000000
		}
		return out
	case PixelFormatARGB4444:
		out := Color(0)
		if c&0x000F != 0 {
			out |= (c&0x000F)<<(8-4) | 0x0000000F
		}
		if c&0x00F0 != 0 {
			out |= (c&0x00F0)<<(16-8) | 0x00000F00
		}
		if c&0x0F00 != 0 {
			out |= (c&0x0F00)<<(24-12) | 0x000F0000
		}
		if c&0xF000 != 0 {
			out |= (c&0xF000)<<(32-16) | 0x0F000000
		}
		return out
	case PixelFormatL8:
		return c&0xFF | 0xFF000000
	case PixelFormatAL44:
		out := Color(0)
		if c&0x0F != 0 {
			out |= (c&0x0F)<<(8-4) | 0x0000000F
		}
		if c&0xF0 != 0 {
			out |= (c&0xF0)<<(32-8) | 0x0F000000
		}
		return out
	case PixelFormatAL88:
		return (c&0x00FF)<<(8-8) |
			(c&0xFF00)<<(32-16)
	}
	panic(badPixelFormat)
}
