// Package rules contains the built-in lint rules.
//
// Importing this package (typically as a blank import) registers every
// rule with the lint registry. Rule files register from init(), so the
// emission order follows file registration order: TB01, TB02.
package rules
