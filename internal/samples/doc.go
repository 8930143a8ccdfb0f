// Package samples holds enum types built on pkg/enum: a mixed-value example
// enum and its extension, arithmetic operations, planets with derived
// physical state, and categories rendered by name.
package samples
