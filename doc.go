// Package utils some shared tools for shamir-audit
//
// # Modules
//
//   - `color.go`: colorful text for the audit transcript
//   - `fs.go`: hash and watch share files
//   - `terminal.go`: detect whether output goes to a terminal
//   - `utils.go`: dedent help text, close quietly
//
// The reconstruction engine lives in `crypto/threshold/shamir`,
// the command line in `cmd`.
package utils
