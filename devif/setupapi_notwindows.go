//go:build !windows

package devif

import "errors"

var errUnsupportedOS = errors.New("devif: device interface enumeration requires windows")

// unsupportedOps stands in for the setupapi boundary on other systems so
// the portable decode engine and its tests build everywhere. Every open
// attempt fails; nothing else is reachable without a handle.
type unsupportedOps struct{}

var defaultOps devQueryOps = unsupportedOps{}

func (unsupportedOps) getClassDevs(*GUID, uint32) (DevInfo, error) {
	return 0, errUnsupportedOS
}

func (unsupportedOps) destroyDeviceInfoList(DevInfo) error { return errUnsupportedOS }

func (unsupportedOps) enumDeviceInterfaces(DevInfo, *GUID, uint32, *SP_DEVICE_INTERFACE_DATA) error {
	return errUnsupportedOS
}

func (unsupportedOps) interfaceDetail(DevInfo, *SP_DEVICE_INTERFACE_DATA, []byte) (uint32, error) {
	return 0, errUnsupportedOS
}

func (unsupportedOps) interfacePropertyKeys(DevInfo, *SP_DEVICE_INTERFACE_DATA, []DevPropKey) (uint32, error) {
	return 0, errUnsupportedOS
}

func (unsupportedOps) interfaceProperty(DevInfo, *SP_DEVICE_INTERFACE_DATA, *DevPropKey, []byte) (DevPropType, uint32, error) {
	return 0, 0, errUnsupportedOS
}
