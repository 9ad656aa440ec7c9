// Package types defines the record kinds managed by the opsdeck store, the
// Entity contract they share, the store configuration, and the standard
// errors surfaced by store operations.
package types
