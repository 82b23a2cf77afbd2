// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package fbdev

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/driver"
)

const (
	ioctlGetVScreenInfo = 0x4600
	ioctlGetFScreenInfo = 0x4602
)

type bitfield struct {
	Offset, Length, MSBRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode              uint32
	Rotate, Colorspace       uint32
	Reserved                 [4]uint32
}

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte
	SMemStart    uintptr
	SMemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

func init() {
	driver.Register(Name, 100, func(opts driver.Options) (driver.Driver, error) {
		return Open(opts)
	}, func() bool {
		_, err := os.Stat(DefaultDevice)
		return err == nil
	})
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg)); errno != 0 {
		return errno
	}
	return nil
}

// Open maps opts.Device, or DefaultDevice when it is empty.
func Open(opts driver.Options) (*Driver, error) {
	device := opts.Device
	if device == "" {
		device = DefaultDevice
	}
	fd, err := unix.Open(device, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", device, err)
	}

	var vinfo varScreenInfo
	var finfo fixScreenInfo
	if err := ioctl(fd, ioctlGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: %s: FBIOGET_VSCREENINFO: %w", device, err)
	}
	if err := ioctl(fd, ioctlGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: %s: FBIOGET_FSCREENINFO: %w", device, err)
	}
	if vinfo.BitsPerPixel != 32 {
		unix.Close(fd)
		return nil, fmt.Errorf("%w: %s is %d bpp", ErrUnsupportedDepth, device, vinfo.BitsPerPixel)
	}

	format, err := driver.FormatFromOffsets(vinfo.Red.Offset, vinfo.Green.Offset, vinfo.Blue.Offset)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: %s: %w", device, err)
	}

	mem, err := unix.Mmap(fd, 0, int(finfo.SMemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: mmap %s: %w", device, err)
	}
	pixels := unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(mem))), len(mem)/4)

	release := func() error {
		return errors.Join(unix.Munmap(mem), unix.Close(fd))
	}
	d, err := newDriver(device, opts, format, pixels, int(vinfo.XRes), int(vinfo.YRes), int(finfo.LineLength)/4, release)
	if err != nil {
		release()
		return nil, err
	}
	ywin.Logger().Info("fbdev: mapped framebuffer",
		"device", device,
		"id", unix.ByteSliceToString(finfo.ID[:]),
		"width", d.width,
		"height", d.height,
		"stride", finfo.LineLength,
		"format", format.String())
	return d, nil
}
