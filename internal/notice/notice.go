// Package notice gates the panicked error banner on the host-supplied
// flag. Show/hide is the entire contract.
package notice

// DefaultMessage is shown when the panicked flag flips on without an
// accompanying message.
const DefaultMessage = "docpane hit an unrecoverable error, check docpane.log"

// Visible reports whether the banner should be shown. The flag is the
// whole truth: no hysteresis, no debouncing, no auto-dismiss, no
// memory of prior calls.
func Visible(panicked bool) bool {
	return panicked
}
