package registry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/agenda"
	"github.com/smileynet/agenda/internal/contact"
)

// ErrInvalidSeed indicates a seed document that parses but cannot be used.
var ErrInvalidSeed = errors.New("registry: invalid seed")

// seedDocument is the YAML layout of a seed file.
type seedDocument struct {
	Profiles []seedProfile `yaml:"profiles"`
}

type seedProfile struct {
	Username string        `yaml:"username"`
	Bio      string        `yaml:"bio"`
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Age   int    `yaml:"age"`
	City  string `yaml:"city"`
	Note  string `yaml:"note"`
}

// Seed builds a registry from a YAML seed document read from r.
// Unknown fields are rejected; usernames must be non-empty and unique.
func Seed(r io.Reader, opts ...Option) (*Registry, error) {
	var doc seedDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("registry: parsing seed: %w", err)
	}

	seen := make(map[string]bool, len(doc.Profiles))
	for i, sp := range doc.Profiles {
		if sp.Username == "" {
			return nil, fmt.Errorf("%w: profile %d has no username", ErrInvalidSeed, i+1)
		}
		if seen[sp.Username] {
			return nil, fmt.Errorf("%w: duplicate username %q", ErrInvalidSeed, sp.Username)
		}
		seen[sp.Username] = true
	}

	reg := New(opts...)
	for _, sp := range doc.Profiles {
		p := reg.NewProfile(sp.Username, sp.Bio)
		for _, sc := range sp.Contacts {
			p.AppendContact(contact.New(sc.Name, sc.Phone, sc.Age, sc.City, sc.Note))
		}
	}

	reg.logger.Info("registry seeded",
		zap.Int("profiles", reg.Len()),
		zap.Strings("usernames", reg.Usernames()),
	)
	return reg, nil
}

// Load builds a registry from the seed file in fsys.
func Load(fsys fs.FS, opts ...Option) (*Registry, error) {
	f, err := fsys.Open(agenda.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("registry: opening seed: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Seed(f, opts...)
}

// Default builds a registry from the embedded seed.
func Default(opts ...Option) (*Registry, error) {
	return Load(agenda.Seed, opts...)
}
