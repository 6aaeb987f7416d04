// Package devif enumerates the device interfaces registered with the
// Windows plug-and-play subsystem (setupapi.dll) and decodes their
// DEVPROP-typed properties into Go values.
//
// A DeviceInterfaceSet owns one enumeration handle. Interfaces() walks the
// registered device interfaces of a class, one DeviceInterface record at a
// time, and every record can resolve its path, its property key list and
// the typed value of any property key.
//
// All variable-length queries follow the setupapi two-call convention:
// a zero-size probe that must fail with ERROR_INSUFFICIENT_BUFFER and
// reports the required size, then a fetch into a buffer of exactly that
// size. The package treats any deviation from that convention (a probe
// that succeeds, a fetch that reports a different size) as a protocol
// violation and panics, since buffer reinterpretation past such a point
// would not be memory safe. Unknown property type tags, on the other hand,
// are normal: they decode to PropUnsupported and never abort a run.
//
// The OS boundary is confined to the *_windows.go files; everything else,
// including the whole decode engine, is portable and tested against fake
// subsystems.
package devif
