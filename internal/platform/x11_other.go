//go:build !linux || android

package platform

// OpenNative is not implemented outside X11; window moves are dropped
func OpenNative(uintptr) (NativeWindow, error) {
	return nil, ErrUnsupported
}

// ScreenSize is not implemented outside X11
func ScreenSize() (int, int, error) {
	return 0, 0, ErrUnsupported
}
