// Package profile implements a named agenda that owns its contacts and
// merges contacts from other profiles by phone number.
package profile

import (
	"go.uber.org/zap"

	"github.com/smileynet/agenda/internal/contact"
	"github.com/smileynet/agenda/internal/seq"
)

// ImportResult reports the outcome of a merge into a profile.
type ImportResult struct {
	Imported int // Contacts copied into the destination.
	Skipped  int // Contacts whose phone was already present in the destination.
}

// DuplicatePair names two contacts in one profile sharing a phone.
type DuplicatePair struct {
	First  string
	Second string
	Phone  string
}

// Profile is a user's agenda. It exclusively owns its contacts: a contact
// handed to AppendContact belongs to the profile until it is deleted or the
// profile is released.
type Profile struct {
	username string
	bio      string
	contacts *seq.List[*contact.Contact]
	logger   *zap.Logger
}

// Option configures a Profile.
type Option func(*Profile)

// WithLogger sets the logger used for import and delete events.
func WithLogger(l *zap.Logger) Option {
	return func(p *Profile) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates an empty profile.
func New(username, bio string, opts ...Option) *Profile {
	p := &Profile{
		username: username,
		bio:      bio,
		contacts: seq.New[*contact.Contact](),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Profile) Username() string        { return p.username }
func (p *Profile) Bio() string             { return p.bio }
func (p *Profile) SetUsername(name string) { p.username = name }
func (p *Profile) SetBio(bio string)       { p.bio = bio }

// ContactCount returns the number of contacts.
func (p *Profile) ContactCount() int {
	return p.contacts.Len()
}

// ContactAt returns the contact at position i. The error wraps
// seq.ErrOutOfRange when i is not a valid position.
func (p *Profile) ContactAt(i int) (*contact.Contact, error) {
	return p.contacts.Get(i)
}

// AppendContact adds c at the end. It does not check for an existing phone;
// callers that want uniqueness test HasPhone first.
func (p *Profile) AppendContact(c *contact.Contact) {
	p.contacts.InsertBack(c)
}

// HasPhone reports whether any contact has exactly this phone.
func (p *Profile) HasPhone(phone string) bool {
	for _, c := range p.contacts.All() {
		if c != nil && c.Phone() == phone {
			return true
		}
	}
	return false
}

// DeleteContactAt removes and releases the contact at pos. Positions outside
// [0, ContactCount()) are ignored and report false.
func (p *Profile) DeleteContactAt(pos int) bool {
	if pos < 0 || pos >= p.ContactCount() {
		return false
	}
	c, err := p.contacts.ExtractAt(pos)
	if err != nil {
		return false
	}
	p.logger.Debug("contact deleted",
		zap.String("profile", p.username),
		zap.Int("position", pos),
		zap.String("contact_id", c.ID()),
	)
	return true
}

// ImportFrom copies every contact of src whose phone is not yet in p.
// Each phone is checked against p as it stands at that moment, so a phone
// repeated inside src is imported once and skipped afterwards.
func (p *Profile) ImportFrom(src *Profile) ImportResult {
	var res ImportResult
	if src == nil {
		return res
	}

	// Bound the walk by the count at the start so a self-import terminates.
	total := src.ContactCount()
	for i := 0; i < total; i++ {
		orig, err := src.ContactAt(i)
		if err != nil || orig == nil {
			continue
		}
		if p.HasPhone(orig.Phone()) {
			res.Skipped++
			continue
		}
		p.AppendContact(orig.Clone())
		res.Imported++
	}

	p.logger.Info("contacts imported",
		zap.String("from", src.username),
		zap.String("to", p.username),
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped),
	)
	return res
}

// Export copies the contacts of src into dst, skipping phones dst already has.
func Export(src, dst *Profile) ImportResult {
	if src == nil || dst == nil {
		return ImportResult{}
	}
	return dst.ImportFrom(src)
}

// DetectDuplicates compares every contact with every later one and returns
// each pair that shares a phone, in scan order. It does not modify p.
func (p *Profile) DetectDuplicates() []DuplicatePair {
	var pairs []DuplicatePair
	for i, first := range p.contacts.All() {
		if first == nil {
			continue
		}
		for j, second := range p.contacts.All() {
			if j <= i || second == nil {
				continue
			}
			if first.Phone() == second.Phone() {
				pairs = append(pairs, DuplicatePair{
					First:  first.Name(),
					Second: second.Name(),
					Phone:  first.Phone(),
				})
			}
		}
	}
	return pairs
}

// Release drops every contact the profile owns and empties it.
func (p *Profile) Release() {
	for !p.contacts.IsEmpty() {
		_, _ = p.contacts.ExtractFront()
	}
	p.contacts.Clear()
}
