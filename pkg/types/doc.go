// Package types defines the Container capability, the Media tagged union,
// and the standard error values shared by the pantry packages.
package types
