package devif

import (
	"encoding/binary"
	"unicode/utf16"
)

// The in-memory stand-in for the setupapi boundary. It speaks the same
// two-call convention as the real subsystem, with knobs to misbehave on
// purpose so the contract checks can be exercised.

type fakeProp struct {
	typ DevPropType
	raw []byte
}

type fakeInterface struct {
	class GUID
	flags uint32
	path  string
	keys  []DevPropKey
	props map[DevPropKey]fakeProp
}

type fakeOps struct {
	interfaces []fakeInterface

	openErr   error
	enumErr   error // returned instead of the record at enumErrAt
	enumErrAt uint32
	destroyed int

	// Contract-breaking knobs.
	detailProbeOK  bool        // detail probe succeeds instead of failing
	fetchSizeDelta uint32      // property fetch reports a different size
	fetchTypeShift DevPropType // property fetch reports a different type
}

const fakeHandle = DevInfo(0x5E7)

func (f *fakeOps) getClassDevs(*GUID, uint32) (DevInfo, error) {
	if f.openErr != nil {
		return 0, f.openErr
	}
	return fakeHandle, nil
}

func (f *fakeOps) destroyDeviceInfoList(DevInfo) error {
	f.destroyed++
	return nil
}

func (f *fakeOps) enumDeviceInterfaces(_ DevInfo, _ *GUID, index uint32, data *SP_DEVICE_INTERFACE_DATA) error {
	if f.enumErr != nil && index == f.enumErrAt {
		return f.enumErr
	}
	if int(index) >= len(f.interfaces) {
		return ERROR_NO_MORE_ITEMS
	}
	rec := &f.interfaces[index]
	data.InterfaceClassGuid = rec.class
	data.Flags = rec.flags
	// The identity cookie the per-record queries resolve the record by.
	data.Reserved = uintptr(index) + 1
	return nil
}

func (f *fakeOps) record(data *SP_DEVICE_INTERFACE_DATA) *fakeInterface {
	return &f.interfaces[data.Reserved-1]
}

func (f *fakeOps) interfaceDetail(_ DevInfo, data *SP_DEVICE_INTERFACE_DATA, dst []byte) (uint32, error) {
	words := append(utf16.Encode([]rune(f.record(data).path)), 0)
	required := uint32(detailDataPathOffset + 2*len(words))
	if len(dst) == 0 {
		if f.detailProbeOK {
			return required, nil
		}
		return required, ERROR_INSUFFICIENT_BUFFER
	}
	for i, w := range words {
		binary.LittleEndian.PutUint16(dst[detailDataPathOffset+2*i:], w)
	}
	return required, nil
}

func (f *fakeOps) interfacePropertyKeys(_ DevInfo, data *SP_DEVICE_INTERFACE_DATA, dst []DevPropKey) (uint32, error) {
	keys := f.record(data).keys
	if len(dst) == 0 {
		return uint32(len(keys)), ERROR_INSUFFICIENT_BUFFER
	}
	copy(dst, keys)
	return uint32(len(keys)), nil
}

func (f *fakeOps) interfaceProperty(_ DevInfo, data *SP_DEVICE_INTERFACE_DATA, key *DevPropKey, dst []byte) (DevPropType, uint32, error) {
	prop, ok := f.record(data).props[*key]
	if !ok {
		return 0, 0, ERROR_NOT_FOUND
	}
	if len(dst) == 0 {
		return prop.typ, uint32(len(prop.raw)), ERROR_INSUFFICIENT_BUFFER
	}
	copy(dst, prop.raw)
	return prop.typ + f.fetchTypeShift, uint32(len(prop.raw)) + f.fetchSizeDelta, nil
}
