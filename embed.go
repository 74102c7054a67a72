// Package agenda provides the embedded default seed data and an overlay
// filesystem that checks local disk first, falling back to embedded.
package agenda

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// SeedFile is the name of the seed document inside a seed filesystem.
const SeedFile = "profiles.yaml"

//go:embed seed/profiles.yaml
var rawSeed embed.FS

// Seed is the embedded seed filesystem with the "seed/" prefix stripped.
var Seed = mustSub(rawSeed, "seed")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// SeedFS returns the seed filesystem for localDir: files there win over the
// embedded defaults.
func SeedFS(localDir string) fs.FS {
	return OverlayFS(localDir, Seed)
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if o.localDir != "" {
		f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name)))
		if err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}
