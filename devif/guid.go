package devif

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Rimpampa/winapi-sd-test/devif/pkg/hexf"
)

var nullGUID = GUID{}

/*
typedef struct _GUID {
	DWORD Data1;
	WORD Data2;
	WORD Data3;
	BYTE Data4[8];
} GUID;
*/

// GUID structure
// Example: {53F56307-B6BF-11D0-94F2-00A0C91EFB8B} =
// GUID(0x53f56307, 0xb6bf, 0x11d0, [8]byte{0x94, 0xf2, 0x00, 0xa0, 0xc9, 0x1e, 0xfb, 0x8b})
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// IsZero checks if GUID is all zeros
func (g *GUID) IsZero() bool {
	return g.Equals(&nullGUID)
}

// UPPERCASE String representation of the GUID.
// Manual encoding is about 10x faster than sprintf.
func (g *GUID) String() string {
	return g.format(hexf.EncodeU)
}

// lowercase string representation of the GUID
func (g *GUID) StringL() string {
	return g.format(hexf.Encode)
}

func (g *GUID) format(enc func(dst, src []byte) int) string {
	var b [38]byte
	b[0] = '{'
	b[37] = '}'

	// Avoid slice allocations
	var d1 [4]byte
	binary.BigEndian.PutUint32(d1[:], g.Data1)

	var d2 [2]byte
	binary.BigEndian.PutUint16(d2[:], g.Data2)

	var d3 [2]byte
	binary.BigEndian.PutUint16(d3[:], g.Data3)

	enc(b[1:9], d1[:])
	b[9] = '-'
	enc(b[10:14], d2[:])
	b[14] = '-'
	enc(b[15:19], d3[:])
	b[19] = '-'
	enc(b[20:24], g.Data4[:2])
	b[24] = '-'
	enc(b[25:37], g.Data4[2:])

	return string(b[:])
}

func (g *GUID) Equals(other *GUID) bool {
	return g.Data1 == other.Data1 &&
		g.Data2 == other.Data2 &&
		g.Data3 == other.Data3 &&
		g.Data4 == other.Data4
}

// guidFromLE reads a GUID from its 16-byte wire layout: the three numeric
// fields are little-endian, Data4 is a plain byte array.
func guidFromLE(b []byte) GUID {
	return GUID{
		Data1: binary.LittleEndian.Uint32(b[0:4]),
		Data2: binary.LittleEndian.Uint16(b[4:6]),
		Data3: binary.LittleEndian.Uint16(b[6:8]),
		Data4: [8]byte(b[8:16]),
	}
}

var guidRE = regexp.MustCompile(`^\{?[A-F0-9]{8}-[A-F0-9]{4}-[A-F0-9]{4}-[A-F0-9]{4}-[A-F0-9]{12}\}?$`)

// MustParseGUID parses a guid string into a GUID struct or panics
func MustParseGUID(sguid string) (guid *GUID) {
	var err error
	if guid, err = ParseGUID(sguid); err != nil {
		panic(err)
	}
	return
}

// ParseGUID parses a guid string into a GUID structure
func ParseGUID(guid string) (g *GUID, err error) {
	var u uint64

	g = &GUID{}
	guid = strings.ToUpper(guid)
	if !guidRE.MatchString(guid) {
		return nil, fmt.Errorf("bad GUID format")
	}
	guid = strings.Trim(guid, "{}")
	sp := strings.Split(guid, "-")

	if u, err = strconv.ParseUint(sp[0], 16, 32); err != nil {
		return
	}
	g.Data1 = uint32(u)
	if u, err = strconv.ParseUint(sp[1], 16, 16); err != nil {
		return
	}
	g.Data2 = uint16(u)
	if u, err = strconv.ParseUint(sp[2], 16, 16); err != nil {
		return
	}
	g.Data3 = uint16(u)
	if u, err = strconv.ParseUint(sp[3], 16, 16); err != nil {
		return
	}
	g.Data4[0] = uint8(u >> 8)
	g.Data4[1] = uint8(u & 0xff)
	if u, err = strconv.ParseUint(sp[4], 16, 64); err != nil {
		return
	}
	g.Data4[2] = uint8(u >> 40)
	g.Data4[3] = uint8((u >> 32) & 0xff)
	g.Data4[4] = uint8((u >> 24) & 0xff)
	g.Data4[5] = uint8((u >> 16) & 0xff)
	g.Data4[6] = uint8((u >> 8) & 0xff)
	g.Data4[7] = uint8(u & 0xff)

	return
}
