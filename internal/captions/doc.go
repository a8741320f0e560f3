// Package captions compiles word-level transcripts into animated ASS caption
// documents.
//
// Flat word streams are first grouped into phrases. Each phrase is packed
// into lines under a character budget, and every word then produces exactly
// one Dialogue event showing its line revealed up to and including that
// word, with the active word highlighted and optionally bounced. Geometry is
// authored against a 1080x1920 reference canvas and scaled to the real
// output size.
//
// Compile is the entry point; WriteFile performs the only I/O.
package captions
