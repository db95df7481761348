// Package domain contains the core business types for rfcdex.
// It has no dependencies on adapters or external libraries.
package domain
