//go:build nonetwork

package main

// NetworkCmds is empty when the network feature is compiled out.
type NetworkCmds struct{}
