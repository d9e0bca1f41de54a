// Package enid implements ENIDs: compact fixed-width identifiers with a
// human-readable base32 text form.
//
// An ENID is either 40 bits (5 bytes, 8 text symbols) or 80 bits (10 bytes,
// 17 text symbols: two 8-symbol chunks joined by a hyphen). The text form
// uses a lowercase Crockford-style alphabet which excludes the letters
// i, l, o and u, so encoded identifiers stay unambiguous when read aloud or
// retyped.
//
// The package only encodes and decodes caller-supplied bytes. It never
// generates identifiers and attaches no meaning to their contents.
package enid
