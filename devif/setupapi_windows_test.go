//go:build windows

package devif

import (
	"testing"

	"golang.org/x/sys/windows"
)

// The portable sentinels are declared by value so the fakes build on
// every GOOS; they must stay in sync with the canonical definitions.
func TestErrnoSentinelsMatchWindows(t *testing.T) {
	if ERROR_INSUFFICIENT_BUFFER != windows.ERROR_INSUFFICIENT_BUFFER {
		t.Errorf("ERROR_INSUFFICIENT_BUFFER = %d", uintptr(ERROR_INSUFFICIENT_BUFFER))
	}
	if ERROR_NO_MORE_ITEMS != windows.ERROR_NO_MORE_ITEMS {
		t.Errorf("ERROR_NO_MORE_ITEMS = %d", uintptr(ERROR_NO_MORE_ITEMS))
	}
	if ERROR_NOT_FOUND != windows.ERROR_NOT_FOUND {
		t.Errorf("ERROR_NOT_FOUND = %d", uintptr(ERROR_NOT_FOUND))
	}
}
