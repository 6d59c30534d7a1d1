package asc

import (
	"github.com/katalvlaran/terrain50/dem"
)

// Loader loads parsed tiles by name. It is the contract package assemble
// consumes; both SourceLoader and Cache satisfy it.
//
// Load returns ErrNotPresent for sea squares, a parse sentinel
// (ErrHeaderFormat, ErrDataShape, ErrDataParse) or ErrTileSource otherwise.
type Loader interface {
	Load(name string) (Header, dem.Grid, error)
}

// Load opens name from src and parses it. ErrNotPresent passes through
// untouched so callers can classify sea squares with errors.Is.
func Load(src Source, name string) (Header, dem.Grid, error) {
	rc, err := src.Open(name)
	if err != nil {
		return Header{}, dem.Grid{}, err
	}
	defer rc.Close()

	return ParseTile(name, rc)
}

// SourceLoader adapts a Source into a Loader without caching.
type SourceLoader struct {
	Src Source
}

// Load implements Loader.
func (l SourceLoader) Load(name string) (Header, dem.Grid, error) {
	return Load(l.Src, name)
}
