package platform

// Options configures backend construction. Fields a platform does not use
// are ignored.
type Options struct {
	// Display and XAuthority select the X server on Linux.
	Display    string
	XAuthority string
}
