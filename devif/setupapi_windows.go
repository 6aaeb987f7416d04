//go:build windows

package devif

import (
	"encoding/binary"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// sysOps is the real devQueryOps: thin wrappers over the setupapi procs
// that keep the raw errno signals intact for the portable layer above.
type sysOps struct{}

var defaultOps devQueryOps = sysOps{}

// asErrno normalizes the error a LazyProc.Call reports on failure into
// the errno set by GetLastError.
func asErrno(e error) error {
	if errno, ok := e.(syscall.Errno); ok && errno != 0 {
		return errno
	}
	return e
}

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdigetclassdevsw
func (sysOps) getClassDevs(class *GUID, flags uint32) (DevInfo, error) {
	r1, _, e := procSetupDiGetClassDevsW.Call(
		uintptr(unsafe.Pointer(class)),
		0, // Enumerator
		0, // hwndParent
		uintptr(flags))
	if windows.Handle(r1) == windows.InvalidHandle {
		return 0, asErrno(e)
	}
	return DevInfo(r1), nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdidestroydeviceinfolist
func (sysOps) destroyDeviceInfoList(h DevInfo) error {
	r1, _, e := procSetupDiDestroyDeviceInfoList.Call(uintptr(h))
	if r1 == 0 {
		return asErrno(e)
	}
	return nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdienumdeviceinterfaces
func (sysOps) enumDeviceInterfaces(h DevInfo, class *GUID, index uint32, data *SP_DEVICE_INTERFACE_DATA) error {
	r1, _, e := procSetupDiEnumDeviceInterfaces.Call(
		uintptr(h),
		0, // DeviceInfoData
		uintptr(unsafe.Pointer(class)),
		uintptr(index),
		uintptr(unsafe.Pointer(data)))
	if r1 == 0 {
		return asErrno(e)
	}
	return nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdigetdeviceinterfacedetailw
func (sysOps) interfaceDetail(h DevInfo, data *SP_DEVICE_INTERFACE_DATA, dst []byte) (uint32, error) {
	var required uint32
	var buf unsafe.Pointer
	if len(dst) > 0 {
		// The caller must prime cbSize with the fixed-prefix size before
		// the fetch call.
		binary.LittleEndian.PutUint32(dst, uint32(unsafe.Sizeof(SP_DEVICE_INTERFACE_DETAIL_DATA_W{})))
		buf = unsafe.Pointer(&dst[0])
	}
	r1, _, e := procSetupDiGetDeviceInterfaceDetailW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(data)),
		uintptr(buf),
		uintptr(len(dst)),
		uintptr(unsafe.Pointer(&required)),
		0) // DeviceInfoData
	if r1 == 0 {
		return required, asErrno(e)
	}
	return required, nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdigetdeviceinterfacepropertykeys
func (sysOps) interfacePropertyKeys(h DevInfo, data *SP_DEVICE_INTERFACE_DATA, dst []DevPropKey) (uint32, error) {
	var required uint32
	var buf unsafe.Pointer
	if len(dst) > 0 {
		buf = unsafe.Pointer(&dst[0])
	}
	r1, _, e := procSetupDiGetDeviceInterfacePropertyKeys.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(data)),
		uintptr(buf),
		uintptr(len(dst)),
		uintptr(unsafe.Pointer(&required)),
		0) // Flags, must be zero
	if r1 == 0 {
		return required, asErrno(e)
	}
	return required, nil
}

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/nf-setupapi-setupdigetdeviceinterfacepropertyw
func (sysOps) interfaceProperty(h DevInfo, data *SP_DEVICE_INTERFACE_DATA, key *DevPropKey, dst []byte) (DevPropType, uint32, error) {
	var propType DevPropType
	var required uint32
	var buf unsafe.Pointer
	if len(dst) > 0 {
		buf = unsafe.Pointer(&dst[0])
	}
	r1, _, e := procSetupDiGetDeviceInterfacePropertyW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(data)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(&propType)),
		uintptr(buf),
		uintptr(len(dst)),
		uintptr(unsafe.Pointer(&required)),
		0) // Flags, must be zero
	if r1 == 0 {
		return propType, required, asErrno(e)
	}
	return propType, required, nil
}
