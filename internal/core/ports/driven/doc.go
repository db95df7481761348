// Package driven defines the outbound ports of the core: interfaces the
// core depends on, implemented by storage, config and fetch adapters.
package driven
