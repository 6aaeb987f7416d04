//go:build windows

package devif

// https://learn.microsoft.com/en-us/windows/win32/api/setupapi/ns-setupapi-sp_device_interface_detail_data_w
//
// typedef struct _SP_DEVICE_INTERFACE_DETAIL_DATA_W {
// 	DWORD cbSize;
// 	WCHAR DevicePath[ANYSIZE_ARRAY];
// } SP_DEVICE_INTERFACE_DETAIL_DATA_W;
//
// The struct is variable-length: DevicePath extends past the declared
// array. Only the header matters here; cbSize must be primed with the
// size of this fixed prefix before the fetch call, and the path payload
// starts right after the cbSize field.
type SP_DEVICE_INTERFACE_DETAIL_DATA_W struct {
	CbSize     uint32
	DevicePath [1]uint16
}
