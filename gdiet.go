// Package gdiet holds the constraints shared by the packages of this module. The set implementation lives in the
// diet subpackage.
package gdiet

// Integer is satisfied by every type with a discrete successor step of 1, which is what interval encoding requires.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
