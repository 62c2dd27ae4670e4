package ltdc

import "testing"

func TestBitsPerPixel(t *testing.T) {
	want := map[PixelFormat]int{
		PixelFormatARGB8888: 32,
		PixelFormatRGB888:   24,
		PixelFormatRGB565:   16,
		PixelFormatARGB1555: 16,
		PixelFormatARGB4444: 16,
		PixelFormatL8:       8,
		PixelFormatAL44:     8,
		PixelFormatAL88:     16,
	}
	for fmt, bits := range want {
		if got := BitsPerPixel(fmt); got != bits {
			t.Errorf("BitsPerPixel(%d) = %d, want %d", fmt, got, bits)
		}
		if got := BytesPerPixel(fmt); got != bits/8 {
			t.Errorf("BytesPerPixel(%d) = %d, want %d", fmt, got, bits/8)
		}
	}
	expectPanic(t, badPixelFormat, func() { BitsPerPixel(8) })
}

func TestFromARGB8888(t *testing.T) {
	tests := []struct {
		fmt  PixelFormat
		in   Color
		want Color
	}{
		{PixelFormatARGB8888, 0x12345678, 0x12345678},
		{PixelFormatRGB888, 0x12345678, 0x00345678},
		{PixelFormatRGB565, 0xFFFF0000, 0xF800},
		{PixelFormatRGB565, 0xFF00FF00, 0x07E0},
		{PixelFormatRGB565, 0xFF0000FF, 0x001F},
		{PixelFormatRGB565, 0xFFFFFFFF, 0xFFFF},
		{PixelFormatARGB1555, 0xFFFFFFFF, 0xFFFF},
		{PixelFormatARGB1555, 0x00FF0000, 0x7C00},
		{PixelFormatARGB4444, 0xFFFFFFFF, 0xFFFF},
		{PixelFormatARGB4444, 0x80FF8000, 0x8F80},
		{PixelFormatL8, 0xFF1234AB, 0xAB},
		{PixelFormatAL44, 0xF00000F0, 0xFF},
		{PixelFormatAL88, 0xFF0000AB, 0xFFAB},
	}
	for _, tt := range tests {
		if got := FromARGB8888(tt.in, tt.fmt); got != tt.want {
			t.Errorf("FromARGB8888(%#08x, %d) = %#x, want %#x", uint32(tt.in), tt.fmt, uint32(got), uint32(tt.want))
		}
	}
}

func TestToARGB8888(t *testing.T) {
	tests := []struct {
		fmt  PixelFormat
		in   Color
		want Color
	}{
		{PixelFormatARGB8888, 0x12345678, 0x12345678},
		{PixelFormatRGB888, 0x00345678, 0xFF345678},
		// Saturated channels expand to fully saturated bytes.
		{PixelFormatRGB565, 0x07E0, 0xFF00FF00},
		{PixelFormatRGB565, 0xF800, 0xFFFF0000},
		{PixelFormatRGB565, 0x001F, 0xFF0000FF},
		{PixelFormatRGB565, 0x0000, 0xFF000000},
		{PixelFormatARGB1555, 0xFFFF, 0xFFFFFFFF},
		{PixelFormatARGB1555, 0x7FFF, 0x00FFFFFF},
		{PixelFormatARGB4444, 0xFFFF, 0xFFFFFFFF},
		{PixelFormatARGB4444, 0xF000, 0xFF000000},
		{PixelFormatL8, 0xAB, 0xFF0000AB},
		{PixelFormatAL44, 0xFF, 0xFF0000FF},
		{PixelFormatAL88, 0xFFAB, 0xFF0000AB},
	}
	for _, tt := range tests {
		if got := ToARGB8888(tt.in, tt.fmt); got != tt.want {
			t.Errorf("ToARGB8888(%#x, %d) = %#08x, want %#08x", uint32(tt.in), tt.fmt, uint32(got), uint32(tt.want))
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	// Fully saturated colors survive a pack and unpack in every
	// format that keeps all three channels.
	colors := []Color{ColorBlack, ColorWhite, ColorRed, ColorGreen, ColorBlue}
	formats := []PixelFormat{PixelFormatARGB8888, PixelFormatRGB888, PixelFormatRGB565, PixelFormatARGB1555, PixelFormatARGB4444}
	for _, fmt := range formats {
		for _, c := range colors {
			got := ToARGB8888(FromARGB8888(c, fmt), fmt)
			if got != c {
				t.Errorf("format %d: %#08x -> %#08x", fmt, uint32(c), uint32(got))
			}
		}
	}
}
