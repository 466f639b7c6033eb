package loader

import "github.com/cartocrow/isosimplify/isoline"

// Source is the loadIsolines collaborator: anything that can produce a
// set of ordered vertex sequences for isoline.NewStore to consume.
type Source interface {
	LoadIsolines() ([]isoline.Input, error)
}
