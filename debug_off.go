//go:build !ccanrdebug

package ccanr

// debugCheck is a no-op outside the ccanrdebug build tag, so production
// builds never pay for the invariant scans.
func debugCheck(*state) error { return nil }
