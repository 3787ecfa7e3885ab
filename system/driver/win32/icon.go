// Copyright (c) 2024, The Tao Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package win32

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"unsafe"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"golang.org/x/image/draw"
	"golang.org/x/sys/windows"
)

// menuIconSize is the edge length menu item bitmaps render at.
const menuIconSize = 16

var errEmptyIcon = errors.New("win32: empty icon buffer")

// menuBitmap turns an encoded icon buffer (PNG, JPEG, GIF, or an ICO
// with a PNG-compressed image) into a 16x16 32-bit native bitmap handle
// for use as a menu item bitmap.
func menuBitmap(buf []byte) (windows.Handle, error) {
	if len(buf) == 0 {
		return 0, errEmptyIcon
	}
	if filetype.IsType(buf, matchers.TypeIco) {
		var err error
		buf, err = icoImage(buf)
		if err != nil {
			return 0, err
		}
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return 0, fmt.Errorf("win32: decode icon: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, menuIconSize, menuIconSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	// GDI wants premultiplied BGRA, which image.RGBA already is up to
	// the channel order.
	bits := make([]byte, len(dst.Pix))
	for i := 0; i < len(bits); i += 4 {
		bits[i+0] = dst.Pix[i+2]
		bits[i+1] = dst.Pix[i+1]
		bits[i+2] = dst.Pix[i+0]
		bits[i+3] = dst.Pix[i+3]
	}

	h, _, err := procCreateBitmap.Call(menuIconSize, menuIconSize, 1, 32,
		uintptr(unsafe.Pointer(&bits[0])))
	if h == 0 {
		return 0, fmt.Errorf("win32: CreateBitmap: %w", err)
	}
	return windows.Handle(h), nil
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// icoImage picks the best image out of an ICO container: the smallest
// PNG-compressed entry at least menuIconSize wide, or the largest one
// below that. Classic BMP-compressed entries are not supported.
func icoImage(buf []byte) ([]byte, error) {
	if len(buf) < 6 {
		return nil, errors.New("win32: truncated ICO header")
	}
	count := int(binary.LittleEndian.Uint16(buf[4:]))

	best := -1
	bestWidth := 0
	for i := 0; i < count; i++ {
		off := 6 + 16*i
		if off+16 > len(buf) {
			break
		}
		width := int(buf[off])
		if width == 0 {
			width = 256
		}
		size := int(binary.LittleEndian.Uint32(buf[off+8:]))
		data := int(binary.LittleEndian.Uint32(buf[off+12:]))
		if data+size > len(buf) || size < len(pngMagic) {
			continue
		}
		if !bytes.HasPrefix(buf[data:data+size], pngMagic) {
			continue
		}
		better := best == -1 ||
			(width >= menuIconSize && (bestWidth < menuIconSize || width < bestWidth)) ||
			(width < menuIconSize && bestWidth < menuIconSize && width > bestWidth)
		if better {
			best, bestWidth = i, width
		}
	}
	if best == -1 {
		return nil, errors.New("win32: ICO has no PNG-compressed image")
	}
	off := 6 + 16*best
	size := int(binary.LittleEndian.Uint32(buf[off+8:]))
	data := int(binary.LittleEndian.Uint32(buf[off+12:]))
	return buf[data : data+size], nil
}
