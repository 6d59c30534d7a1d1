package asc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source opens raw tile content by tile name.
//
// Open returns ErrNotPresent (possibly wrapped) when the source simply has
// no data for the tile — the square is in the sea. Any other error means
// the source itself failed and should surface as a tile error, not sea.
type Source interface {
	Open(name string) (io.ReadCloser, error)
}

// DirSource reads tiles stored as plain `<NAME>.asc` files in the root of
// an fs.FS. Tile names are upper-cased to form the file name.
type DirSource struct {
	fsys fs.FS
}

// NewDirSource returns a DirSource over fsys.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Open implements Source.
func (s *DirSource) Open(name string) (io.ReadCloser, error) {
	f, err := s.fsys.Open(strings.ToUpper(name) + ".asc")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotPresent, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: tile %s: %v", ErrTileSource, name, err)
	}

	return f, nil
}

// ZipDirSource reads tiles from the unzipped OS Terrain 50 dataset layout:
// Base holds one directory per two-letter grid square (lower-case), each
// containing one `<sq>_*.zip` per tile (the `*` part is a release date),
// and each zip holding a single `<SQ>.asc` data file.
//
// Names are validated with ValidateSquareName before touching the disk:
// only a valid grid square that is genuinely absent counts as a sea square
// (ErrNotPresent). A malformed name, multiple matching zips, or a zip
// without its .asc entry is ErrTileSource.
type ZipDirSource struct {
	base string
}

// NewZipDirSource returns a ZipDirSource rooted at base.
func NewZipDirSource(base string) *ZipDirSource {
	return &ZipDirSource{base: base}
}

// Open implements Source.
func (s *ZipDirSource) Open(name string) (io.ReadCloser, error) {
	if err := ValidateSquareName(name); err != nil {
		return nil, err
	}

	lower := strings.ToLower(name)
	dir := filepath.Join(s.base, lower[:2])
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotPresent, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: tile %s: %v", ErrTileSource, name, err)
	}

	var matches []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(e.Name(), lower) && strings.HasSuffix(e.Name(), ".zip") {
			matches = append(matches, e.Name())
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotPresent, name)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: tile %s: multiple archives %v", ErrTileSource, name, matches)
	}

	zr, err := zip.OpenReader(filepath.Join(dir, matches[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: tile %s: %v", ErrTileSource, name, err)
	}
	want := strings.ToUpper(name) + ".asc"
	for _, f := range zr.File {
		if f.Name != want {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			_ = zr.Close()
			return nil, fmt.Errorf("%w: tile %s: %v", ErrTileSource, name, err)
		}

		return &zipEntryReader{rc: rc, zr: zr}, nil
	}
	_ = zr.Close()

	return nil, fmt.Errorf("%w: tile %s: archive %s has no %s entry",
		ErrTileSource, name, matches[0], want)
}

// zipEntryReader closes both the entry and its enclosing archive.
type zipEntryReader struct {
	rc io.ReadCloser
	zr *zip.ReadCloser
}

func (z *zipEntryReader) Read(p []byte) (int, error) { return z.rc.Read(p) }

func (z *zipEntryReader) Close() error {
	err := z.rc.Close()
	if zerr := z.zr.Close(); err == nil {
		err = zerr
	}

	return err
}
