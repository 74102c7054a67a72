// Package registry holds the ordered set of profiles and loads them from a
// YAML seed document.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/smileynet/agenda/internal/profile"
	"github.com/smileynet/agenda/internal/seq"
)

// ErrProfileNotFound is matched by errors.Is for lookups of unknown usernames.
var ErrProfileNotFound = errors.New("registry: profile not found")

// UnknownProfileError indicates a username is not in the registry.
type UnknownProfileError struct {
	Username  string
	Available []string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q (available: %s)", e.Username, strings.Join(e.Available, ", "))
}

// Is makes errors.Is(err, ErrProfileNotFound) hold.
func (e *UnknownProfileError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// Registry is the top-level ordered collection of profiles.
// It is not safe for concurrent use.
type Registry struct {
	profiles *seq.List[*profile.Profile]
	logger   *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for the registry and every profile it seeds.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		profiles: seq.New[*profile.Profile](),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of profiles.
func (r *Registry) Len() int {
	return r.profiles.Len()
}

// Get returns the profile at position i.
func (r *Registry) Get(i int) (*profile.Profile, error) {
	p, err := r.profiles.Get(i)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return p, nil
}

// Add appends p. A nil profile is ignored.
func (r *Registry) Add(p *profile.Profile) {
	if p == nil {
		return
	}
	r.profiles.InsertBack(p)
}

// NewProfile creates a profile sharing the registry's logger and appends it.
func (r *Registry) NewProfile(username, bio string) *profile.Profile {
	p := profile.New(username, bio, profile.WithLogger(r.logger))
	r.Add(p)
	return p
}

// Lookup finds a profile by exact username and returns it with its position.
// Unknown usernames return an *UnknownProfileError.
func (r *Registry) Lookup(username string) (*profile.Profile, int, error) {
	for i, p := range r.profiles.All() {
		if p.Username() == username {
			return p, i, nil
		}
	}
	return nil, -1, &UnknownProfileError{Username: username, Available: r.Usernames()}
}

// Usernames returns every username in registry order.
func (r *Registry) Usernames() []string {
	names := make([]string, 0, r.Len())
	for _, p := range r.profiles.All() {
		names = append(names, p.Username())
	}
	return names
}

// All yields every position and profile in order.
func (r *Registry) All() iter.Seq2[int, *profile.Profile] {
	return r.profiles.All()
}

// Close releases every profile, and with them their contacts, then empties
// the registry.
func (r *Registry) Close() {
	for !r.profiles.IsEmpty() {
		p, err := r.profiles.ExtractFront()
		if err != nil {
			break
		}
		p.Release()
	}
	r.profiles.Clear()
}
