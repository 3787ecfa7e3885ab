// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, size int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

// buildICO assembles an ICO container around the given PNG payloads.
// Width 256 is encoded as 0 per the format.
func buildICO(widths []int, payloads [][]byte) []byte {
	var b bytes.Buffer
	hdr := make([]byte, 6)
	binary.LittleEndian.PutUint16(hdr[2:], 1) // type: icon
	binary.LittleEndian.PutUint16(hdr[4:], uint16(len(payloads)))
	b.Write(hdr)

	offset := 6 + 16*len(payloads)
	for i, p := range payloads {
		entry := make([]byte, 16)
		w := widths[i]
		if w == 256 {
			w = 0
		}
		entry[0] = byte(w)
		entry[1] = byte(w)
		binary.LittleEndian.PutUint32(entry[8:], uint32(len(p)))
		binary.LittleEndian.PutUint32(entry[12:], uint32(offset))
		b.Write(entry)
		offset += len(p)
	}
	for _, p := range payloads {
		b.Write(p)
	}
	return b.Bytes()
}

func TestIcoImagePrefersSmallestAtLeastIconSize(t *testing.T) {
	small := encodePNG(t, 8, color.White)
	mid := encodePNG(t, 16, color.Black)
	big := encodePNG(t, 256, color.White)

	got, err := icoImage(buildICO([]int{8, 256, 16}, [][]byte{small, big, mid}))
	require.NoError(t, err)
	assert.Equal(t, mid, got)
}

func TestIcoImageFallsBackToLargestSmallEntry(t *testing.T) {
	four := encodePNG(t, 4, color.White)
	eight := encodePNG(t, 8, color.Black)

	got, err := icoImage(buildICO([]int{4, 8}, [][]byte{four, eight}))
	require.NoError(t, err)
	assert.Equal(t, eight, got)
}

func TestIcoImageRejectsNonPNGEntries(t *testing.T) {
	bmp := []byte{0x28, 0, 0, 0, 1, 2, 3, 4}
	_, err := icoImage(buildICO([]int{16}, [][]byte{bmp}))
	assert.Error(t, err)
}

func TestIcoImageTruncated(t *testing.T) {
	_, err := icoImage([]byte{0, 0, 1})
	assert.Error(t, err)
}

func TestMenuBitmapFromPNG(t *testing.T) {
	h, err := menuBitmap(encodePNG(t, 32, color.RGBA{R: 255, A: 255}))
	require.NoError(t, err)
	assert.NotZero(t, h)
}

func TestMenuBitmapFromICO(t *testing.T) {
	ico := buildICO([]int{16}, [][]byte{encodePNG(t, 16, color.Black)})
	h, err := menuBitmap(ico)
	require.NoError(t, err)
	assert.NotZero(t, h)
}

func TestMenuBitmapEmpty(t *testing.T) {
	_, err := menuBitmap(nil)
	assert.ErrorIs(t, err, errEmptyIcon)
}

func TestMenuBitmapGarbage(t *testing.T) {
	_, err := menuBitmap([]byte("not an image"))
	assert.Error(t, err)
}
