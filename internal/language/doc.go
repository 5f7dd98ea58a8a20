// Package language defines the fixed set of source-file extensions the
// bundler recognizes and resolves user-supplied language lists against it.
package language
