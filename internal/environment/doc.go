// Package environment implements the lexical scopes a MellowD program runs
// in.
//
// An Environment maps names to binding references and, separately, to
// callable functions. Scopes nest: lookups search the current scope and then
// each enclosing scope outward. A function closes over the scope it was
// defined in, and every call runs in a fresh child of that defining scope,
// never of the caller's.
//
// Environments are not safe for concurrent use. Evaluation is sequential
// and a scope is only ever touched by one evaluation at a time.
package environment
