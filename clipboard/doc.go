// Package clipboard defines the narrow port to the host operating system's
// clipboard and its production implementation. The rest of the server only
// sees the Clipboard interface; platform details (which helper binary is
// invoked, what remediation to suggest when it is missing) stay inside this
// package.
//
// Failures are decorated with platform detection and guidance so that wire
// errors and logs tell an operator what to fix, not just that exec failed.
// The in-memory fake used throughout the tests lives in the clipboardtest
// subpackage.
package clipboard
