// Command lsdevif lists the device interfaces registered on the local
// system, with their paths and decoded properties.
//
//	lsdevif                        present interfaces, well-known classes
//	lsdevif -all                   include absent interfaces
//	lsdevif -class disk,volume     restrict to some classes
//	lsdevif -key DEVPKEY_NAME      restrict the printed properties
//	lsdevif -removable             storage interfaces on removable media
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Rimpampa/winapi-sd-test/devif"
)

var (
	all       bool
	removable bool
	debug     bool
	classFlag string
	keyFlag   string
)

func init() {
	flag.BoolVar(&all, "all", false, "include interfaces of absent devices")
	flag.BoolVar(&removable, "removable", false, "only interfaces backed by removable media")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.StringVar(&classFlag, "class", "", "comma separated interface classes (name or GUID)")
	flag.StringVar(&keyFlag, "key", "", "comma separated property keys (DEVPKEY name or fmtid::pid)")
}

// parseClass accepts a class GUID, a GUID_DEVINTERFACE constant name, or
// its lowercase shorthand (disk, volume, comport, ...).
func parseClass(s string) (devif.GUID, error) {
	for _, c := range devif.InterfaceClasses {
		short := strings.ToLower(strings.TrimPrefix(c.Name, "GUID_DEVINTERFACE_"))
		if s == c.Name || strings.ToLower(s) == short {
			return c.GUID, nil
		}
	}
	g, err := devif.ParseGUID(s)
	if err != nil {
		return devif.GUID{}, fmt.Errorf("unknown interface class %q", s)
	}
	return *g, nil
}

// parseKey accepts a DEVPKEY constant name or the fmtid::pid form.
func parseKey(s string) (devif.DevPropKey, error) {
	if key, ok := devif.KeyByName(s); ok {
		return key, nil
	}
	fmtid, pid, ok := strings.Cut(s, "::")
	if ok {
		g, err := devif.ParseGUID(fmtid)
		if err == nil {
			if n, err := strconv.ParseUint(pid, 10, 32); err == nil {
				return devif.DevPropKey{Fmtid: *g, Pid: uint32(n)}, nil
			}
		}
	}
	return devif.DevPropKey{}, fmt.Errorf("unknown property key %q", s)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// marker renders the interface state as a one-character prefix.
func marker(rec *devif.DeviceInterface) byte {
	switch {
	case rec.IsRemoved():
		return '!'
	case rec.IsDefault():
		return '#'
	case rec.IsActive():
		return '+'
	}
	return '-'
}

// isRemovable resolves the removable-media property, treating a missing
// key or an error as not removable.
func isRemovable(rec *devif.DeviceInterface) bool {
	prop, err := rec.Property(devif.DEVPKEY_Storage_Removable_Media)
	if err != nil {
		return false
	}
	b, ok := prop.(devif.PropBool)
	return ok && bool(b)
}

func printInterface(rec *devif.DeviceInterface, keys *devif.KeyFilter) {
	path, err := rec.Path()
	if err != nil {
		slog.Warn("skipping interface", "class", rec.ClassGUID(), "error", err)
		return
	}
	fmt.Printf("%c %s\n", marker(rec), path)

	propKeys, err := rec.PropertyKeys()
	if err != nil {
		slog.Warn("property keys unavailable", "path", path, "error", err)
		return
	}
	for _, key := range propKeys {
		if !keys.Match(key) {
			continue
		}
		name, ok := devif.KeyName(key)
		if !ok {
			name = key.String()
		}
		prop, err := rec.Property(key)
		if err != nil {
			slog.Warn("property unavailable", "path", path, "key", name, "error", err)
			continue
		}
		fmt.Printf("    %s = %s\n", name, prop)
	}
}

func run() error {
	var classes []devif.InterfaceClass
	for _, s := range splitList(classFlag) {
		g, err := parseClass(s)
		if err != nil {
			return err
		}
		name := g.String()
		if known, ok := className(g); ok {
			name = known
		}
		classes = append(classes, devif.InterfaceClass{Name: name, GUID: g})
	}
	if len(classes) == 0 {
		classes = devif.InterfaceClasses
	}

	var keyList []devif.DevPropKey
	for _, s := range splitList(keyFlag) {
		key, err := parseKey(s)
		if err != nil {
			return err
		}
		keyList = append(keyList, key)
	}
	keys := devif.NewKeyFilter(keyList...)

	open := devif.OpenPresent
	if all {
		open = devif.OpenAll
	}
	set, err := open()
	if err != nil {
		return err
	}
	defer set.Close()

	for _, cls := range classes {
		fmt.Printf("[%s]\n", cls.Name)
		it := set.Interfaces(&cls.GUID)
		for it.Next() {
			rec := it.Interface()
			if removable && !isRemovable(rec) {
				continue
			}
			printInterface(rec, keys)
		}
		if err := it.Err(); err != nil {
			slog.Error("enumeration aborted", "class", cls.Name, "error", err)
		}
	}
	return nil
}

func className(g devif.GUID) (string, bool) {
	for _, c := range devif.InterfaceClasses {
		if c.GUID.Equals(&g) {
			return c.Name, true
		}
	}
	return "", false
}

func main() {
	flag.Parse()
	if debug {
		devif.SetDebugLevel(false)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lsdevif:", err)
		os.Exit(1)
	}
}
