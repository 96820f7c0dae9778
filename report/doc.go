// Package report renders the result of a reconstruction run,
// as a human readable transcript or as a JSON document.
package report
