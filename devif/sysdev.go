package devif

// DevInfo is the opaque HDEVINFO enumeration handle returned by the
// plug-and-play subsystem.
type DevInfo uintptr

/*
typedef struct _SP_DEVICE_INTERFACE_DATA {
	DWORD     cbSize;
	GUID      InterfaceClassGuid;
	DWORD     Flags;
	ULONG_PTR Reserved;
} SP_DEVICE_INTERFACE_DATA;
*/

// SP_DEVICE_INTERFACE_DATA is the fixed-size descriptor blob filled in by
// one enumeration step. Reserved is an opaque per-item token understood
// only by setupapi; it is what actually identifies the interface in the
// follow-up queries, so the struct must be handed back untouched.
type SP_DEVICE_INTERFACE_DATA struct {
	CbSize             uint32
	InterfaceClassGuid GUID
	Flags              uint32
	Reserved           uintptr
}

// SP_DEVICE_INTERFACE_DATA.Flags bits.
const (
	SPINT_ACTIVE  = 0x00000001
	SPINT_DEFAULT = 0x00000002
	SPINT_REMOVED = 0x00000004
)

// SetupDiGetClassDevsW flags.
const (
	DIGCF_DEFAULT         = 0x00000001
	DIGCF_PRESENT         = 0x00000002
	DIGCF_ALLCLASSES      = 0x00000004
	DIGCF_PROFILE         = 0x00000008
	DIGCF_DEVICEINTERFACE = 0x00000010
)

// devQueryOps is the boundary with the OS device-management subsystem:
// the six setupapi entry points this package consumes, with their raw
// two-call buffer semantics intact (errno signals included). The real
// implementation lives in setupapi_windows.go; tests substitute fakes to
// script item counts, failures and handle lifetimes.
//
// Size/probe semantics per method:
//   - interfaceDetail and interfaceProperty take dst in bytes; a nil dst
//     is the zero-size probe and must fail with ERROR_INSUFFICIENT_BUFFER
//     reporting the required byte count.
//   - interfacePropertyKeys is measured in keys, not bytes, following the
//     underlying API.
//   - interfaceProperty reports the property type tag on the probe as well
//     as on the fetch.
type devQueryOps interface {
	getClassDevs(class *GUID, flags uint32) (DevInfo, error)
	destroyDeviceInfoList(h DevInfo) error
	enumDeviceInterfaces(h DevInfo, class *GUID, index uint32, data *SP_DEVICE_INTERFACE_DATA) error
	interfaceDetail(h DevInfo, data *SP_DEVICE_INTERFACE_DATA, dst []byte) (required uint32, err error)
	interfacePropertyKeys(h DevInfo, data *SP_DEVICE_INTERFACE_DATA, dst []DevPropKey) (required uint32, err error)
	interfaceProperty(h DevInfo, data *SP_DEVICE_INTERFACE_DATA, key *DevPropKey, dst []byte) (propType DevPropType, required uint32, err error)
}
