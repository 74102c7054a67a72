// Package contact defines the agenda entry owned by a profile.
package contact

import "github.com/google/uuid"

// Contact is a single agenda entry. Two contacts are the same person, for
// de-duplication purposes, when their phone strings are equal; ID only
// distinguishes records.
type Contact struct {
	id    string
	name  string
	phone string
	age   int
	city  string
	note  string
}

// New creates a contact with a fresh ID.
func New(name, phone string, age int, city, note string) *Contact {
	return &Contact{
		id:    uuid.NewString(),
		name:  name,
		phone: phone,
		age:   age,
		city:  city,
		note:  note,
	}
}

// Clone returns an independent copy with the same field values and a new ID.
func (c *Contact) Clone() *Contact {
	return New(c.name, c.phone, c.age, c.city, c.note)
}

// Field accessors.

func (c *Contact) ID() string    { return c.id }
func (c *Contact) Name() string  { return c.name }
func (c *Contact) Phone() string { return c.phone }
func (c *Contact) Age() int      { return c.age }
func (c *Contact) City() string  { return c.city }
func (c *Contact) Note() string  { return c.note }

// Field setters. The ID is fixed at creation.

func (c *Contact) SetName(name string)   { c.name = name }
func (c *Contact) SetPhone(phone string) { c.phone = phone }
func (c *Contact) SetAge(age int)        { c.age = age }
func (c *Contact) SetCity(city string)   { c.city = city }
func (c *Contact) SetNote(note string)   { c.note = note }
