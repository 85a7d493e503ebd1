//go:build darwin

package main

import "golang.design/x/mainthread"

// runHeadless keeps the main thread serving the Carbon hotkey registrations
// while fn runs.
func runHeadless(fn func()) {
	mainthread.Init(fn)
}
