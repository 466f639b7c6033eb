// Package loader supplies the loadIsolines external collaborator: turning
// some on-disk representation of drawn curves into the ordered vertex
// sequences isoline.NewStore expects.
//
// Source is the declared interface; FromYAML is the one concrete
// implementation this module owns, reading a small YAML fixture format
// rather than the original drawing tool's native file format (out of
// scope for this core).
package loader
