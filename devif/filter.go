package devif

import (
	"sync"

	"github.com/0xrawsec/golang-utils/datastructs"
)

// InterfaceFilter decides which enumerated records a walk keeps.
type InterfaceFilter interface {
	// Match must return true if the record has to be filtered in
	Match(d *DeviceInterface) bool
}

// PropertyFilter decides which property keys a walk resolves.
type PropertyFilter interface {
	Match(key DevPropKey) bool
}

type baseFilter struct {
	sync.RWMutex
	s *datastructs.Set
}

// match checks membership; a nil or empty filter matches everything.
func (f *baseFilter) match(v interface{}) bool {
	f.RLock()
	defer f.RUnlock()

	if f.s == nil || f.s.Len() == 0 {
		return true
	}
	return f.s.Contains(v)
}

// ClassFilter selects records by interface class GUID.
type ClassFilter struct {
	baseFilter
}

// NewClassFilter creates a filter matching only the given classes. With
// no arguments the filter matches every class.
func NewClassFilter(classes ...GUID) *ClassFilter {
	f := &ClassFilter{}
	f.s = datastructs.NewInitSet(datastructs.ToInterfaceSlice(classes)...)
	return f
}

// Match checks the record's class GUID against the filter.
func (f *ClassFilter) Match(d *DeviceInterface) bool {
	return f.match(d.ClassGUID())
}

// KeyFilter selects property keys.
type KeyFilter struct {
	baseFilter
}

// NewKeyFilter creates a filter matching only the given keys. With no
// arguments the filter matches every key.
func NewKeyFilter(keys ...DevPropKey) *KeyFilter {
	f := &KeyFilter{}
	f.s = datastructs.NewInitSet(datastructs.ToInterfaceSlice(keys)...)
	return f
}

// Match checks the key against the filter.
func (f *KeyFilter) Match(key DevPropKey) bool {
	return f.match(key)
}
