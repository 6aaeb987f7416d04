package devif

import (
	"fmt"
	"strings"

	"github.com/Rimpampa/winapi-sd-test/devif/pkg/hexf"
)

// DevProperty is one decoded device interface property value. It is a
// closed sum over the DEVPROP types the decode engine understands, plus
// PropUnsupported for every tag outside that set.
//
// Every variant implements fmt.Stringer with a display form suitable for
// listing tools: scalars print their value, GUIDs print lowercase braced,
// binary prints as a lowercase hex run, Empty/Null/Unsupported print the
// #EMPTY / #NULL / #UNSUP{tag} markers.
type DevProperty interface {
	fmt.Stringer
	devProperty()
}

type (
	PropEmpty  struct{}
	PropNull   struct{}
	PropI8     int8
	PropU8     uint8
	PropI16    int16
	PropU16    uint16
	PropI32    int32
	PropU32    uint32
	PropI64    int64
	PropU64    uint64
	PropF32    float32
	PropF64    float64
	PropBool   bool
	PropGUID   GUID
	PropString string
	PropBinary []byte

	PropI8Array   []int8
	PropU16Array  []uint16
	PropI16Array  []int16
	PropU32Array  []uint32
	PropI32Array  []int32
	PropU64Array  []uint64
	PropI64Array  []int64
	PropF32Array  []float32
	PropF64Array  []float64
	PropBoolArray []bool
	PropGUIDArray []GUID

	// PropUnsupported carries the raw type tag of a property the decode
	// table has no entry for.
	PropUnsupported DevPropType
)

func (PropEmpty) devProperty()       {}
func (PropNull) devProperty()        {}
func (PropI8) devProperty()          {}
func (PropU8) devProperty()          {}
func (PropI16) devProperty()         {}
func (PropU16) devProperty()         {}
func (PropI32) devProperty()         {}
func (PropU32) devProperty()         {}
func (PropI64) devProperty()         {}
func (PropU64) devProperty()         {}
func (PropF32) devProperty()         {}
func (PropF64) devProperty()         {}
func (PropBool) devProperty()        {}
func (PropGUID) devProperty()        {}
func (PropString) devProperty()      {}
func (PropBinary) devProperty()      {}
func (PropI8Array) devProperty()     {}
func (PropU16Array) devProperty()    {}
func (PropI16Array) devProperty()    {}
func (PropU32Array) devProperty()    {}
func (PropI32Array) devProperty()    {}
func (PropU64Array) devProperty()    {}
func (PropI64Array) devProperty()    {}
func (PropF32Array) devProperty()    {}
func (PropF64Array) devProperty()    {}
func (PropBoolArray) devProperty()   {}
func (PropGUIDArray) devProperty()   {}
func (PropUnsupported) devProperty() {}

func (PropEmpty) String() string { return "#EMPTY" }
func (PropNull) String() string  { return "#NULL" }

func (p PropI8) String() string   { return fmt.Sprintf("%d", int8(p)) }
func (p PropU8) String() string   { return fmt.Sprintf("%d", uint8(p)) }
func (p PropI16) String() string  { return fmt.Sprintf("%d", int16(p)) }
func (p PropU16) String() string  { return fmt.Sprintf("%d", uint16(p)) }
func (p PropI32) String() string  { return fmt.Sprintf("%d", int32(p)) }
func (p PropU32) String() string  { return fmt.Sprintf("%d", uint32(p)) }
func (p PropI64) String() string  { return fmt.Sprintf("%d", int64(p)) }
func (p PropU64) String() string  { return fmt.Sprintf("%d", uint64(p)) }
func (p PropF32) String() string  { return fmt.Sprintf("%v", float32(p)) }
func (p PropF64) String() string  { return fmt.Sprintf("%v", float64(p)) }
func (p PropBool) String() string { return fmt.Sprintf("%t", bool(p)) }

func (p PropGUID) String() string {
	g := GUID(p)
	return g.StringL()
}

func (p PropString) String() string { return string(p) }

func (p PropBinary) String() string { return hexf.EncodeToString(p) }

func (p PropI8Array) String() string   { return fmt.Sprintf("%v", []int8(p)) }
func (p PropU16Array) String() string  { return fmt.Sprintf("%v", []uint16(p)) }
func (p PropI16Array) String() string  { return fmt.Sprintf("%v", []int16(p)) }
func (p PropU32Array) String() string  { return fmt.Sprintf("%v", []uint32(p)) }
func (p PropI32Array) String() string  { return fmt.Sprintf("%v", []int32(p)) }
func (p PropU64Array) String() string  { return fmt.Sprintf("%v", []uint64(p)) }
func (p PropI64Array) String() string  { return fmt.Sprintf("%v", []int64(p)) }
func (p PropF32Array) String() string  { return fmt.Sprintf("%v", []float32(p)) }
func (p PropF64Array) String() string  { return fmt.Sprintf("%v", []float64(p)) }
func (p PropBoolArray) String() string { return fmt.Sprintf("%v", []bool(p)) }

func (p PropGUIDArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p[i].StringL())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (p PropUnsupported) String() string {
	return "#UNSUP{" + DevPropType(p).String() + "}"
}
