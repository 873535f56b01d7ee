package macho

import (
	"sort"

	"github.com/ssargent/machorec/pkg/codec"
)

// All lists every cataloged schema.
var All = []*codec.Schema{
	FatHeader,
	FatArch,
	MachHeader64,
	LoadCommand,
	SegmentCommand64,
	Section64,
	SymtabCommand,
	DysymtabCommand,
	Dylib,
	DylibCommand,
	DylinkerCommand,
	SubClientCommand,
	UUIDCommand,
	BuildVersionCommand,
	EntryPointCommand,
	RpathCommand,
	SourceVersionCommand,
	LinkeditDataCommand,
	DyldInfoCommand,
	VersionMinCommand,
	Nlist64,
}

var byName = func() map[string]*codec.Schema {
	m := make(map[string]*codec.Schema, len(All))
	for _, s := range All {
		m[s.Name()] = s
	}
	return m
}()

// Lookup returns the cataloged schema with the given name.
func Lookup(name string) (*codec.Schema, bool) {
	s, ok := byName[name]
	return s, ok
}

// Names returns every cataloged schema name, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
