package devif

import "fmt"

// Layout of SP_DEVICE_INTERFACE_DETAIL_DATA_W: a uint32 cbSize header
// directly followed by the NUL-terminated UTF-16 path. The header is
// stripped before the payload is handed to the string decoder.
const (
	detailDataAlign      = 4
	detailDataPathOffset = 4
)

// Decoded property layouts top out at 8-byte scalars (UINT64, DOUBLE).
const propertyAlign = 8

// DeviceInterface is one enumerated device interface, borrowed from the
// DeviceInterfaceSet that produced it. The record stays valid only while
// that set is open; queries on a record of a closed set fail with
// ErrSetClosed. Records are immutable after the enumeration step.
type DeviceInterface struct {
	set  *DeviceInterfaceSet
	data SP_DEVICE_INTERFACE_DATA
}

func (d *DeviceInterface) is(flag uint32) bool {
	return d.data.Flags&flag == flag
}

// IsActive reports whether the interface is currently active.
func (d *DeviceInterface) IsActive() bool { return d.is(SPINT_ACTIVE) }

// IsDefault reports whether the interface is the default for its class.
func (d *DeviceInterface) IsDefault() bool { return d.is(SPINT_DEFAULT) }

// IsRemoved reports whether the interface is flagged as removed.
func (d *DeviceInterface) IsRemoved() bool { return d.is(SPINT_REMOVED) }

// ClassGUID returns the interface class this record was enumerated under.
func (d *DeviceInterface) ClassGUID() GUID { return d.data.InterfaceClassGuid }

// Path returns the device interface path, usable with CreateFile and
// friends to address the device.
func (d *DeviceInterface) Path() (string, error) {
	if err := d.set.usable("Path"); err != nil {
		return "", err
	}
	raw, err := fetchSizedBytes("interface detail", detailDataAlign, func(dst []byte) (uint32, error) {
		return d.set.ops.interfaceDetail(d.set.handle, &d.data, dst)
	})
	if err != nil {
		return "", err
	}
	if len(raw) < detailDataPathOffset {
		protocolViolation("interface detail", "buffer of %d bytes is shorter than its own header", len(raw))
	}
	// Drop the cbSize header so only the path remains.
	return utf16BytesToString(raw[detailDataPathOffset:]), nil
}

// PropertyKeys returns every property key registered for this interface.
// The values behind the keys are resolved with Property or
// DescribeProperty.
func (d *DeviceInterface) PropertyKeys() ([]DevPropKey, error) {
	if err := d.set.usable("PropertyKeys"); err != nil {
		return nil, err
	}
	return fetchSized("interface property keys", func(dst []DevPropKey) (uint32, error) {
		return d.set.ops.interfacePropertyKeys(d.set.handle, &d.data, dst)
	})
}

// PropertyDescriptor is the transient result of a probe for one property:
// the type tag and exact byte length of the pending value. Produced by
// DescribeProperty and consumed by exactly one Fetch; it is not meant to
// be kept around.
type PropertyDescriptor struct {
	iface *DeviceInterface

	Key  DevPropKey
	Type DevPropType
	Size uint32
}

// DescribeProperty resolves the type tag and byte size of a property
// without materializing its value. A key the interface does not carry
// surfaces as a platform error.
func (d *DeviceInterface) DescribeProperty(key DevPropKey) (*PropertyDescriptor, error) {
	if err := d.set.usable("DescribeProperty"); err != nil {
		return nil, err
	}
	pt, required, err := d.set.ops.interfaceProperty(d.set.handle, &d.data, &key, nil)
	if err == nil {
		protocolViolation("describe property", "zero-size probe succeeded for %s", key)
	}
	if err != ERROR_INSUFFICIENT_BUFFER {
		return nil, fmt.Errorf("describe property %s: %w", key, err)
	}
	return &PropertyDescriptor{iface: d, Key: key, Type: pt, Size: required}, nil
}

// Fetch retrieves the raw value this descriptor was resolved for and
// decodes it. The fetch must report the same type tag and byte length the
// probe did; a disagreement means the descriptor went stale or the
// subsystem broke its contract, and interpretation stops there.
func (pd *PropertyDescriptor) Fetch() (DevProperty, error) {
	d := pd.iface
	if err := d.set.usable("Fetch"); err != nil {
		return nil, err
	}
	if pd.Size == 0 {
		return decodeProperty(pd.Type, nil), nil
	}

	raw := allocAligned(int(pd.Size), propertyAlign)
	pt, got, err := d.set.ops.interfaceProperty(d.set.handle, &d.data, &pd.Key, raw)
	if err != nil {
		return nil, fmt.Errorf("fetch property %s: %w", pd.Key, err)
	}
	if pt != pd.Type {
		protocolViolation("fetch property", "type tag changed between probe (%s) and fetch (%s)", pd.Type, pt)
	}
	if got != pd.Size {
		protocolViolation("fetch property", "fetch reported %d bytes, probe reported %d", got, pd.Size)
	}
	return decodeProperty(pd.Type, raw), nil
}

// Property resolves and decodes the value of one property key in a single
// call: DescribeProperty followed by Fetch.
func (d *DeviceInterface) Property(key DevPropKey) (DevProperty, error) {
	pd, err := d.DescribeProperty(key)
	if err != nil {
		return nil, err
	}
	return pd.Fetch()
}
