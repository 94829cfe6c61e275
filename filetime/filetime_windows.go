package filetime

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

func uint64FromFiletime(filetime *windows.Filetime) uint64 {
	return *(*uint64)(unsafe.Pointer(filetime))
}

// Timestamp converts a golang time into the native file
// time structure, zero time into the zero structure.
func Timestamp(t time.Time) windows.Filetime {
	value := FromTime(t)
	return *(*windows.Filetime)(unsafe.Pointer(&value))
}

// Time converts the native file time structure back into a
// golang time.
func Time(ft windows.Filetime) time.Time {
	return ToTime(uint64FromFiletime(&ft))
}

// IsZero tells whether the file time is unset.
func IsZero(ft windows.Filetime) bool {
	return ft.HighDateTime == 0 && ft.LowDateTime == 0
}
