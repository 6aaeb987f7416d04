package devif

import (
	"testing"

	"github.com/0xrawsec/toast"
)

func TestClassFilter(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	disk := &DeviceInterface{data: SP_DEVICE_INTERFACE_DATA{InterfaceClassGuid: GUID_DEVINTERFACE_DISK}}
	vol := &DeviceInterface{data: SP_DEVICE_INTERFACE_DATA{InterfaceClassGuid: GUID_DEVINTERFACE_VOLUME}}

	// Empty filter matches everything.
	f := NewClassFilter()
	tt.Assert(f.Match(disk))
	tt.Assert(f.Match(vol))

	f = NewClassFilter(GUID_DEVINTERFACE_DISK)
	tt.Assert(f.Match(disk))
	tt.Assert(!f.Match(vol))

	f = NewClassFilter(GUID_DEVINTERFACE_DISK, GUID_DEVINTERFACE_VOLUME)
	tt.Assert(f.Match(disk))
	tt.Assert(f.Match(vol))
}

func TestKeyFilter(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	f := NewKeyFilter()
	tt.Assert(f.Match(DEVPKEY_NAME))

	f = NewKeyFilter(DEVPKEY_NAME, DEVPKEY_Device_FriendlyName)
	tt.Assert(f.Match(DEVPKEY_NAME))
	tt.Assert(f.Match(DEVPKEY_Device_FriendlyName))
	tt.Assert(!f.Match(DEVPKEY_Device_Class))
}
