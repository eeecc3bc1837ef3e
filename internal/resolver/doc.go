// Package resolver maps raw user-entered terms to dictionary entries,
// including input normalization and deterministic disambiguation of
// homographs.
package resolver
