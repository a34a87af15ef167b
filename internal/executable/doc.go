// Package executable is the evaluation core of MellowD: the expression and
// statement nodes a parsed program is made of.
//
// An Expression[T] computes a value of type T against an environment. A
// Statement runs for its effects: it may change the environment, write
// events to an output, or both. Evaluation is depth-first and strictly
// left to right, and nothing here recovers from a failure; errors are
// returned, wrapped with the position of the failing statement, to the
// caller that drives the compilation.
//
// New node kinds only need to implement Expression or Statement, so
// plugins can extend the tree without touching this package.
package executable
