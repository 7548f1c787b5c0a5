//go:build linux

package evdev

// ioctl request encoding per the Linux _IOC macro.
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uint32) uint {
	return uint(dir<<iocDirShift | typ<<iocTypeShift | nr<<iocNRShift | size<<iocSizeShift)
}

// EVIOCGRAB = _IOW('E', 0x90, int)
func eviocgrab() uint {
	return ioc(iocWrite, 'E', 0x90, 4)
}

// EVIOCGNAME(len) = _IOC(_IOC_READ, 'E', 0x06, len)
func eviocgname(length int) uint {
	return ioc(iocRead, 'E', 0x06, uint32(length))
}

// EVIOCGBIT(ev, len) = _IOC(_IOC_READ, 'E', 0x20 + ev, len)
func eviocgbit(ev, length int) uint {
	return ioc(iocRead, 'E', uint32(0x20+ev), uint32(length))
}
