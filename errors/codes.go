package errors

// Kind identifies the leaf failure mode that produced an error.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// I/O kinds.

	// KindWrite indicates a write to an output stream or filesystem failed.
	KindWrite Kind = "WRITE_FAILED"

	// KindRead indicates a read from an input stream or filesystem failed.
	KindRead Kind = "READ_FAILED"

	// KindFlush indicates flushing a buffered output stream failed.
	KindFlush Kind = "FLUSH_FAILED"

	// KindOtherIO indicates an I/O failure that is neither a read, a write nor a flush.
	KindOtherIO Kind = "IO_FAILED"

	// Flat kinds.

	// KindExample is the placeholder kind used by examples and tests.
	KindExample Kind = "EXAMPLE"

	// KindWeird indicates an impossible state was observed and no underlying
	// fault exists to describe it.
	KindWeird Kind = "WEIRD"

	// KindCommand indicates an external command failed to spawn or to run.
	KindCommand Kind = "COMMAND_FAILED"

	// KindConfig indicates a configuration value could not be parsed or was rejected.
	KindConfig Kind = "CONFIG_INVALID"

	// KindUnknown is reported for errors that did not come from this package.
	KindUnknown Kind = "UNKNOWN"
)

// Family groups related kinds under one domain.
// The zero value FamilyNone marks flat kinds that belong to no family.
type Family string

const (
	// FamilyNone is reported by flat kinds and foreign errors.
	FamilyNone Family = ""

	// FamilyIO groups KindWrite, KindRead, KindFlush and KindOtherIO.
	FamilyIO Family = "IO"

	// FamilyRequest groups the network kinds. It is only ever reported when the
	// package is built with networking; the constant is always declared so that
	// switches over Family compile in both configurations.
	FamilyRequest Family = "REQUEST"
)

// String returns the family name, or "NONE" for FamilyNone.
func (f Family) String() string {
	if f == FamilyNone {
		return "NONE"
	}
	return string(f)
}
