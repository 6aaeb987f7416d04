package devif

import (
	"strings"
	"testing"

	"github.com/0xrawsec/toast"
)

func TestKeyNames(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	name, ok := KeyName(DEVPKEY_NAME)
	tt.Assert(ok)
	tt.Assert(name == "DEVPKEY_NAME")

	name, ok = KeyName(DEVPKEY_Storage_Removable_Media)
	tt.Assert(ok)
	tt.Assert(name == "DEVPKEY_Storage_Removable_Media")

	_, ok = KeyName(DevPropKey{Fmtid: GUID{Data1: 1}, Pid: 1})
	tt.Assert(!ok)
}

func TestKeyByName(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// Every listed name resolves back to its own key.
	for key, name := range keyNames {
		back, ok := KeyByName(name)
		tt.Assert(ok, "missing "+name)
		tt.Assert(back == key, "mismatch for "+name)
	}

	_, ok := KeyByName("DEVPKEY_Nonexistent")
	tt.Assert(!ok)
}

func TestKeyNamesAreUnique(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	seen := make(map[string]DevPropKey, len(keyNames))
	for key, name := range keyNames {
		tt.Assert(strings.HasPrefix(name, "DEVPKEY_"), "bad name "+name)
		if prev, dup := seen[name]; dup {
			tt.Assert(false, "name "+name+" maps to "+prev.String()+" and "+key.String())
		}
		seen[name] = key
	}
}
