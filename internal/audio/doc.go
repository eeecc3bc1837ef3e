// Package audio defines the optional pronunciation-clip step of the card
// pipeline. A Fetcher obtains a clip for a resolved dictionary entry from a
// configured provider; every failure degrades into a typed absence reason so
// card assembly never blocks on audio.
package audio
