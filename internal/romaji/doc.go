// Package romaji converts kana readings into Hepburn-style romaji. The
// conversion works mora by mora and is configurable in its treatment of long
// vowels, the topic particle は, and the syllabic nasal ん.
package romaji
