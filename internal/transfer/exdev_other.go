//go:build !unix

package transfer

// isCrossDevice always retries via copy+remove on platforms without EXDEV
// detection; os.Rename across volumes fails with platform-specific errors.
func isCrossDevice(err error) bool {
	return err != nil
}
