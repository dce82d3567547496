package cmd

import "os"

// exitFunc is swapped out by tests that need to observe the exit code
// without terminating the test binary; everywhere else it is os.Exit.
var exitFunc = os.Exit
