package cmd

import "fmt"

// importCommand builds the single remote invocation that imports the
// uploaded script and removes it afterwards. RouterOS accepts multiple
// commands separated by ";" in one exec request, so import and cleanup share
// one authentication round-trip. If the invocation fails, RouterOS gives no
// way to tell whether the import or the removal failed; callers treat both
// as one execution failure and the file may remain on the device.
func importCommand(remoteName string) string {
	q := shellQuote(remoteName)
	return fmt.Sprintf("/import file-name=%s verbose=no; /file remove %s", q, q)
}
