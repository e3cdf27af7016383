//go:build !linux

package main

// madviseSequential is a no-op on non-Linux platforms.
func madviseSequential(data []byte) {}
