package touch

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// AbsInfo mirrors struct input_absinfo.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// ioctl request encoding (Linux _IOC macro)
const (
	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uint32) uintptr {
	return uintptr((dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift))
}

// EVIOCGABS(abs) = _IOR('E', 0x40 + abs, struct input_absinfo)
func eviocgAbs(code int) uintptr {
	return ioc(iocRead, uint32('E'), uint32(0x40+code), uint32(unsafe.Sizeof(AbsInfo{})))
}

// EVIOCGRAB = _IOW('E', 0x90, int)
func eviocGrab() uintptr {
	return ioc(iocWrite, uint32('E'), 0x90, uint32(unsafe.Sizeof(int32(0))))
}

// Device is an open evdev touchscreen. It implements io.Reader over the raw
// event stream so it can back an EventReader directly.
type Device struct {
	file    *os.File
	path    string
	grabbed bool
}

// OpenDevice opens an event device, optionally grabbing it for exclusive
// access so other consumers stop seeing its events.
func OpenDevice(path string, grab bool) (*Device, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open touch device %s: %w", path, err)
	}

	d := &Device{file: file, path: path}
	if grab {
		if err := d.setGrab(1); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to grab %s: %w", path, err)
		}
		d.grabbed = true
	}

	return d, nil
}

func (d *Device) Path() string {
	return d.path
}

func (d *Device) Read(p []byte) (int, error) {
	return d.file.Read(p)
}

// AbsInfo queries the axis range for one ABS code, e.g. AbsMtSlot to learn
// how many contact slots the controller reports.
func (d *Device) AbsInfo(code int) (AbsInfo, error) {
	var info AbsInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), eviocgAbs(code), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return AbsInfo{}, &os.SyscallError{Syscall: "SYS_IOCTL", Err: errno}
	}
	return info, nil
}

func (d *Device) setGrab(value int32) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), eviocGrab(), uintptr(value))
	if errno != 0 {
		return &os.SyscallError{Syscall: "SYS_IOCTL", Err: errno}
	}
	return nil
}

// Release drops the exclusive grab if one was taken and closes the device.
func (d *Device) Release() error {
	if d.grabbed {
		_ = d.setGrab(0)
		d.grabbed = false
	}
	return d.file.Close()
}
