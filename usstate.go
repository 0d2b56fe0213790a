package enumtour

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a name does not match any declared variant.
var ErrUnknownVariant = errors.New("unknown variant")

// UsState is the region minted on the back of a state quarter.
type UsState string

const (
	Alabama  UsState = "Alabama"
	Alaska   UsState = "Alaska"
	Arizona  UsState = "Arizona"
	Arkansas UsState = "Arkansas"
	More     UsState = "More"
)

// UsStates returns every declared state in declaration order.
func UsStates() []UsState {
	return []UsState{Alabama, Alaska, Arizona, Arkansas, More}
}

// ParseUsState returns the state with the given name.
func ParseUsState(name string) (UsState, error) {
	s := UsState(name)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate reports whether s is one of the declared states. The zero value is not.
func (s UsState) Validate() error {
	switch s {
	case Alabama, Alaska, Arizona, Arkansas, More:
		return nil
	}
	return fmt.Errorf("us state %q: %w", string(s), ErrUnknownVariant)
}

func (s UsState) String() string { return string(s) }

// MarshalYAML implements yaml.Marshaler.
func (s UsState) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return string(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *UsState) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseUsState(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
