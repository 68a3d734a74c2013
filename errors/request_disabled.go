//go:build nonetwork

package errors

func fromRequestLeaf(Leaf) *Error { return nil }
