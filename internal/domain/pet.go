package domain

import "fmt"

// Age bounds, inclusive.
const (
	MinAge = 1
	MaxAge = 50
)

// Pet is a single named pet with a bounded age.
// The zero value is not a valid Pet; use NewPet.
type Pet struct {
	name string
	age  int
}

// NewPet creates a Pet, failing with ErrInvalidAge when age is out of range.
func NewPet(name string, age int) (Pet, error) {
	if err := validateAge(age); err != nil {
		return Pet{}, err
	}
	return Pet{name: name, age: age}, nil
}

// Name returns the pet's name.
func (p Pet) Name() string { return p.name }

// Age returns the pet's age.
func (p Pet) Age() int { return p.age }

// SetName replaces the pet's name.
func (p *Pet) SetName(name string) {
	p.name = name
}

// SetAge replaces the pet's age. On ErrInvalidAge the pet is left unchanged.
func (p *Pet) SetAge(age int) error {
	if err := validateAge(age); err != nil {
		return err
	}
	p.age = age
	return nil
}

func validateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidAge, age, MinAge, MaxAge)
	}
	return nil
}
