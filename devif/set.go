package devif

import (
	"fmt"
	"log/slog"
	"unsafe"
)

// DeviceInterfaceSet owns one enumeration handle, scoped by the filter
// flags it was opened with. The handle lives from a successful Open until
// Close releases it, exactly once.
//
// The underlying handle is not safely transferable between threads, so
// the set is confined to the goroutine that opened it: every operation
// asserts the caller's goroutine id and panics on a mismatch. Records
// borrowed from the set via Interfaces must not be used after Close.
type DeviceInterfaceSet struct {
	noCopy noCopy

	ops    devQueryOps
	handle DevInfo
	flags  uint32
	owner  int64
	closed bool
}

// OpenPresent opens a set containing the device interfaces of every class
// that is currently present on the system.
func OpenPresent() (*DeviceInterfaceSet, error) {
	return openSet(defaultOps, DIGCF_PRESENT)
}

// OpenAll opens a set containing the device interfaces of every class,
// present or not.
func OpenAll() (*DeviceInterfaceSet, error) {
	return openSet(defaultOps, 0)
}

func openSet(ops devQueryOps, extra uint32) (*DeviceInterfaceSet, error) {
	flags := uint32(DIGCF_ALLCLASSES | DIGCF_DEVICEINTERFACE | extra)
	h, err := ops.getClassDevs(nil, flags)
	if err != nil {
		return nil, fmt.Errorf("open device interface set: %w", err)
	}
	s := &DeviceInterfaceSet{
		ops:    ops,
		handle: h,
		flags:  flags,
		owner:  getGoroutineID(),
	}
	slog.Debug("opened device interface set", "handle", uintptr(h), "flags", flags)
	return s, nil
}

// Close releases the enumeration handle. The release happens exactly
// once: calling Close again returns ErrSetClosed without touching the
// subsystem. Safe to call even if nothing was ever enumerated.
func (s *DeviceInterfaceSet) Close() error {
	s.assertOwner("Close")
	if s.closed {
		return ErrSetClosed
	}
	s.closed = true
	if err := s.ops.destroyDeviceInfoList(s.handle); err != nil {
		return fmt.Errorf("close device interface set: %w", err)
	}
	slog.Debug("closed device interface set", "handle", uintptr(s.handle))
	return nil
}

// usable gates every per-record query: wrong-goroutine use panics,
// use after Close fails with ErrSetClosed.
func (s *DeviceInterfaceSet) usable(op string) error {
	s.assertOwner(op)
	if s.closed {
		return ErrSetClosed
	}
	return nil
}

func (s *DeviceInterfaceSet) assertOwner(op string) {
	if gid := getGoroutineID(); gid != s.owner {
		panic(fmt.Sprintf(
			"devif: %s called from goroutine %d, set is confined to goroutine %d",
			op, gid, s.owner))
	}
}

// Interfaces returns a lazy iterator over the device interfaces
// registered under the given class GUID. The sequence is finite and not
// restartable; call Interfaces again for a fresh, independent pass.
//
//	it := set.Interfaces(&guid)
//	for it.Next() {
//		rec := it.Interface()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
func (s *DeviceInterfaceSet) Interfaces(class *GUID) *InterfaceIter {
	return &InterfaceIter{set: s, class: class}
}

// InterfaceIter steps through the per-index enumeration query. Exhaustion
// (ERROR_NO_MORE_ITEMS) ends the sequence cleanly with Err() == nil; any
// other failure is reported once through Err() and also ends the
// sequence, since later indices are not reliable after an unexpected
// fault.
type InterfaceIter struct {
	set   *DeviceInterfaceSet
	class *GUID
	index uint32
	cur   *DeviceInterface
	err   error
	done  bool
}

// Next advances to the next device interface. It returns false at the end
// of the sequence; check Err to tell exhaustion from failure.
func (it *InterfaceIter) Next() bool {
	if it.done {
		return false
	}
	s := it.set
	if err := s.usable("Interfaces.Next"); err != nil {
		it.err = err
		it.done, it.cur = true, nil
		return false
	}

	// Fresh zero-initialized descriptor each step, size-primed as the
	// enumeration call requires.
	var data SP_DEVICE_INTERFACE_DATA
	data.CbSize = uint32(unsafe.Sizeof(data))

	switch err := s.ops.enumDeviceInterfaces(s.handle, it.class, it.index, &data); err {
	case nil:
		it.cur = &DeviceInterface{set: s, data: data}
		it.index++
		return true
	case ERROR_NO_MORE_ITEMS:
		it.done, it.cur = true, nil
		return false
	default:
		it.err = fmt.Errorf("enumerate device interface %d: %w", it.index, err)
		it.done, it.cur = true, nil
		return false
	}
}

// Interface returns the record produced by the last successful Next.
func (it *InterfaceIter) Interface() *DeviceInterface { return it.cur }

// Err returns the failure that ended the sequence, or nil after a clean
// exhaustion.
func (it *InterfaceIter) Err() error { return it.err }
