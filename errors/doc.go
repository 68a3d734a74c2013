// Package errors provides the layered error taxonomy used by every shawty primitive.
//
// Failures are described at three levels. A leaf names one concrete failure
// mode and keeps the original low-level fault. A family groups related leaves
// under one domain. The top-level Error unifies all families and the flat
// leaves that belong to none. The package stays compatible with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap) at every level.
//
// # Taxonomy
//
//   - I/O family (*IOError): *WriteError, *ReadError, *FlushError, *OtherIOError
//   - Request family (*RequestError, networking builds only): *ClientBuildError,
//     *HostMismatchError, *URLParseError, *RequestFailedError
//   - Flat leaves: *ExampleError, *WeirdError, *CommandError, *ConfigError
//
// Building with the nonetwork tag removes the request family and its kinds.
// Code that switches over Kind or Family should keep a default case so it
// compiles in both configurations and keeps working as new leaves are added.
//
// # Quick Start
//
// Creating errors at the point of failure:
//
//	if _, err := io.WriteString(w, msg); err != nil {
//	    return errors.Write("failed to print to stdout", err)
//	}
//
// Each shorthand builds the leaf, folds it into its family and lifts the
// family into Error. The explicit form is equivalent:
//
//	leaf := errors.NewReadError("failed to read stdin", err)
//	return errors.FromIO(errors.NewIOError(leaf))
//
// Inspecting errors:
//
//	switch errors.GetFamily(err) {
//	case errors.FamilyIO:
//	    // console or filesystem fault
//	case errors.FamilyRequest:
//	    // network fault
//	default:
//	    // flat kinds
//	}
//
//	var cmdErr *errors.CommandError
//	if errors.As(err, &cmdErr) && cmdErr.Stage() == errors.StageSpawning {
//	    // The program could not be started
//	}
//
// # Causal Chain
//
// Leaves keep the underlying fault verbatim and return it from Unwrap, so
// errors.Is(err, fs.ErrPermission) works through every level. Rendering
// chains rather than replaces: the message of an Error always contains the
// context string and the cause's own message.
//
//	[READ_FAILED] failed to read: 'Failed to read directory: /tmp/x': open /tmp/x: permission denied
//
// # Invariant Violations
//
// A *WeirdError is returned when a primitive observes a state that should be
// impossible, such as a directory that is still missing after a successful
// create. It has no cause. Use IsInvariantViolation to tell it apart from
// ordinary recoverable faults.
//
// # Classification
//
// Every kind has a default classification, retryable or permanent. The
// library never retries; IsRetryable is advice for callers that do.
//
// # Serialization
//
// ToJSON and Error.MarshalJSON produce a flat ErrorResponse. Error also
// implements slog.LogValuer so it renders as a structured group when logged.
package errors
