// Package seq implements a singly-linked, position-addressable list.
//
// Head and tail insertion are O(1). Everything else walks from the head,
// including removal of the tail, since nodes keep no back link.
package seq

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrOutOfRange = errors.New("seq: position out of range")
	ErrEmpty      = errors.New("seq: list is empty")
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is an ordered sequence of T. The zero value is an empty list ready to use.
//
// head and tail are nil exactly when size is 0, and tail.next is always nil.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// InsertFront adds e before the first element.
func (l *List[T]) InsertFront(e T) {
	n := &node[T]{value: e}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head = n
	}
	l.size++
}

// InsertBack adds e after the last element.
func (l *List[T]) InsertBack(e T) {
	n := &node[T]{value: e}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// InsertAt places e so that it ends up at position pos. Valid positions are
// 0 through Len() inclusive; anything else returns ErrOutOfRange and leaves
// the list untouched.
func (l *List[T]) InsertAt(e T, pos int) error {
	if pos < 0 || pos > l.size {
		return fmt.Errorf("%w: insert at %d (size %d)", ErrOutOfRange, pos, l.size)
	}
	switch pos {
	case 0:
		l.InsertFront(e)
	case l.size:
		l.InsertBack(e)
	default:
		prev := l.nodeAt(pos - 1)
		prev.next = &node[T]{value: e, next: prev.next}
		l.size++
	}
	return nil
}

// ExtractFront removes and returns the first element.
func (l *List[T]) ExtractFront() (T, error) {
	if l.head == nil {
		return *new(T), ErrEmpty
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// ExtractBack removes and returns the last element. It walks the list to find
// the new tail.
func (l *List[T]) ExtractBack() (T, error) {
	if l.head == nil {
		return *new(T), ErrEmpty
	}
	if l.head == l.tail {
		v := l.head.value
		l.head = nil
		l.tail = nil
		l.size = 0
		return v, nil
	}

	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}
	v := l.tail.value
	prev.next = nil
	l.tail = prev
	l.size--
	return v, nil
}

// ExtractAt removes and returns the element at pos (0 through Len()-1).
func (l *List[T]) ExtractAt(pos int) (T, error) {
	if l.head == nil {
		return *new(T), ErrEmpty
	}
	if pos < 0 || pos >= l.size {
		return *new(T), fmt.Errorf("%w: extract at %d (size %d)", ErrOutOfRange, pos, l.size)
	}
	if pos == 0 {
		return l.ExtractFront()
	}
	if pos == l.size-1 {
		return l.ExtractBack()
	}

	prev := l.nodeAt(pos - 1)
	n := prev.next
	prev.next = n.next
	n.next = nil
	l.size--
	return n.value, nil
}

// Get returns the element at pos without removing it.
func (l *List[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= l.size {
		return *new(T), fmt.Errorf("%w: get %d (size %d)", ErrOutOfRange, pos, l.size)
	}
	return l.nodeAt(pos).value, nil
}

// Clear unlinks every node and resets the list to empty. Values themselves
// are not released; that is up to whoever owns them.
func (l *List[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// All yields every position and element in order, in a single walk.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// nodeAt walks to the node at pos. Callers guarantee 0 <= pos < size.
func (l *List[T]) nodeAt(pos int) *node[T] {
	n := l.head
	for i := 0; i < pos; i++ {
		n = n.next
	}
	return n
}
