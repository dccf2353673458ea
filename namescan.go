// Package namescan provides a batch pipeline that retrieves remotely
// hosted PDF documents, extracts their text, and reports every occurrence
// of a name drawn from a configurable dictionary, together with a short
// context window around each hit. Matching is insensitive to Turkish
// diacritics: a name containing a locale-specific letter matches its
// ASCII-folded spelling and vice versa.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., pdf/,
// goquery/, sqlite/), with pipeline orchestration in scan/.
package namescan
