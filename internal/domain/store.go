package domain

import "fmt"

// Capacity is the maximum number of pets a Store holds.
const Capacity = 100

// Entry is a read-only view of one stored pet and its current position.
type Entry struct {
	Position int
	Name     string
	Age      int
}

// Store is an ordered, bounded collection of pets.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	pets []Pet
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{pets: make([]Pet, 0)}
}

// Add validates and appends a pet, returning the position it was given.
// The store is unchanged on error.
func (s *Store) Add(name string, age int) (int, error) {
	if len(s.pets) >= Capacity {
		return 0, fmt.Errorf("%w: capacity %d reached", ErrDatabaseFull, Capacity)
	}
	pet, err := NewPet(name, age)
	if err != nil {
		return 0, err
	}
	s.pets = append(s.pets, pet)
	return len(s.pets) - 1, nil
}

// RemoveAt removes the pet at position. Every later pet moves one position
// earlier, so insertion order is preserved.
func (s *Store) RemoveAt(position int) error {
	if err := s.checkPosition(position); err != nil {
		return err
	}
	copy(s.pets[position:], s.pets[position+1:])
	s.pets[len(s.pets)-1] = Pet{}
	s.pets = s.pets[:len(s.pets)-1]
	return nil
}

// Get returns a copy of the pet at position.
func (s *Store) Get(position int) (Pet, error) {
	if err := s.checkPosition(position); err != nil {
		return Pet{}, err
	}
	return s.pets[position], nil
}

// List returns a snapshot of the store in position order.
func (s *Store) List() []Entry {
	entries := make([]Entry, len(s.pets))
	for i, p := range s.pets {
		entries[i] = Entry{Position: i, Name: p.name, Age: p.age}
	}
	return entries
}

// Size returns the number of stored pets.
func (s *Store) Size() int {
	return len(s.pets)
}

// Capacity returns the maximum number of pets the store accepts.
func (s *Store) Capacity() int {
	return Capacity
}

// Empty returns true if the store holds no pets.
func (s *Store) Empty() bool {
	return len(s.pets) == 0
}

func (s *Store) checkPosition(position int) error {
	if position < 0 || position >= len(s.pets) {
		return fmt.Errorf("%w: ID %d does not exist", ErrInvalidPosition, position)
	}
	return nil
}
