// Package processor wires the card-creation pipeline together: it loads the
// dictionary index, builds the romanizer, audio fetcher and field mapping
// from configuration, drives the batch run, and hands the results to the
// Anki exporter. This package serves as the main coordinator between all
// other components.
package processor
