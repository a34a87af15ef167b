// Package failure defines the error conditions raised by the execution
// engine. Each condition is a sentinel that detection sites wrap with
// fmt.Errorf("%w: ...") so callers can classify a failure with errors.Is
// while still getting a descriptive message.
//
// None of these conditions is recovered inside the engine. They travel up
// the evaluation call chain to whoever drives the compilation.
package failure
