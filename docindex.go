// Package docindex builds a normalized documentation index for editor
// autocompletion. It reads raw documentation containers (local JSON dumps,
// remote module manifests, generated API pages), normalizes every record
// into one canonical Entry shape, and groups the entries per source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., htmltomarkdown/, goquery/, http/).
package docindex
