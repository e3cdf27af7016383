//go:build !linux && !darwin

package main

// getMaxRSS is unavailable without getrusage; peak RSS reports as 0.
func getMaxRSS() uint64 {
	return 0
}
