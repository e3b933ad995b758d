// Package site derives the settings record handed to the static site
// generator: site metadata plus the static path list and the per-file
// destination overrides for icons kept under the extra directory.
//
// Every value produced here is built once and never mutated; accessors on
// Settings hand out copies.
package site
