package devif

import (
	"testing"
	"unsafe"

	"github.com/0xrawsec/toast"

	"github.com/Rimpampa/winapi-sd-test/internal/test"
)

func TestAllocAligned(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	for _, align := range []int{1, 2, 4, 8, 16} {
		for _, size := range []int{1, 3, 7, 16, 129} {
			buf := allocAligned(size, align)
			tt.Assert(len(buf) == size)
			tt.Assert(cap(buf) == size)
			addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
			tt.Assert(addr%uintptr(align) == 0)
		}
	}
}

func TestAllocAlignedBadArgs(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	tt.ShouldPanic(func() { allocAligned(0, 8) })
	tt.ShouldPanic(func() { allocAligned(-1, 8) })
	tt.ShouldPanic(func() { allocAligned(16, 0) })
	tt.ShouldPanic(func() { allocAligned(16, 3) })
	tt.ShouldPanic(func() { allocAligned(16, -4) })
}
