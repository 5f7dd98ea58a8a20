// Package bundle orders discovered source files and concatenates them into a
// single text artifact.
//
// The artifact layout is: an optional author line, then for every file an
// optional "// Source of file: <path>" line, the file content, and one blank
// separator line. Content is copied as bytes; nothing here understands the
// languages being bundled.
package bundle
