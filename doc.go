// Package sharpgen models C# declarations and emits source text for them.
//
// Callers describe classes, structs, interfaces, enumerations and
// namespaces through the fluent builders in the builder package. A
// builder accumulates configuration and child builders; its Build method
// validates the accumulated state and freezes it into an immutable IR
// value (package ir), which the csharp package renders deterministically
// to source text.
//
// This root package holds the pieces shared by every layer: the
// configuration error taxonomy and the Formatter collaborator that
// cosmetically re-indents rendered output.
package sharpgen
