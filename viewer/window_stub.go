//go:build !gocv

package viewer

// New returns a Nop viewer; rebuild with -tags gocv for an on-screen window.
func New(opts Options) (Viewer, error) {
	return Nop{}, nil
}
