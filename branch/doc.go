// Package branch classifies git branch names into session descriptors.
//
// Parsing is total: every branch name yields a Descriptor. Names that match
// none of the known conventions fall back to the unknown platform, with file
// names derived by replacing every "/" with "-".
package branch
