package util

import (
	"fmt"
	"os"
)

// Die is like fmt.Printf, but writes to stderr, adds a newline, and
// terminates the process.
func Die(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// Log writes a notice to stderr. Notices go to stderr so that stdout
// carries nothing but rendered output.
func Log(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
}

// Logf is Log with a format string.
func Logf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}
