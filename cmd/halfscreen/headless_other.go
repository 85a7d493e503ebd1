//go:build !darwin

package main

func runHeadless(fn func()) {
	fn()
}
