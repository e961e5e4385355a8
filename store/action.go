package store

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Action names, matching the store's method set.
const (
	ActionIncreaseCounter = "increaseCounter"
	ActionDecreaseCounter = "decreaseCounter"
	ActionSetColorCode    = "setColorCode"
)

var (
	// ErrUnknownAction is returned when an action name is not recognised.
	ErrUnknownAction = errors.New("unknown action")
	// ErrEmptyAction is returned when an action token is blank.
	ErrEmptyAction = errors.New("empty action")
)

// Action names a store action and its argument.
type Action struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// String renders the action in the form ParseAction accepts.
func (a Action) String() string {
	if a.Name == ActionSetColorCode {
		return a.Name + "=" + a.Value
	}
	return a.Name
}

// Dispatch runs the action named by a.
func (s *Store) Dispatch(a Action) error {
	switch a.Name {
	case ActionIncreaseCounter:
		s.IncreaseCounter()
	case ActionDecreaseCounter:
		s.DecreaseCounter()
	case ActionSetColorCode:
		s.SetColorCode(a.Value)
	default:
		return fmt.Errorf("dispatch %q: %w", a.Name, ErrUnknownAction)
	}
	return nil
}

// DispatchAll runs actions in order and stops at the first failure.
func (s *Store) DispatchAll(actions []Action) error {
	for i, a := range actions {
		if err := s.Dispatch(a); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}

// ParseAction parses a single action token.
//
//	inc, +, increaseCounter
//	dec, -, decreaseCounter
//	color=<value>, setColorCode=<value>
//
// The color value is taken verbatim and may be empty.
func ParseAction(token string) (Action, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Action{}, ErrEmptyAction
	}
	name, value, hasValue := strings.Cut(token, "=")
	switch name {
	case "inc", "+", ActionIncreaseCounter:
		if !hasValue {
			return Action{Name: ActionIncreaseCounter}, nil
		}
	case "dec", "-", ActionDecreaseCounter:
		if !hasValue {
			return Action{Name: ActionDecreaseCounter}, nil
		}
	case "color", ActionSetColorCode:
		if hasValue {
			return Action{Name: ActionSetColorCode, Value: value}, nil
		}
	}
	return Action{}, fmt.Errorf("parse %q: %w", token, ErrUnknownAction)
}

// ParseActions parses a comma or whitespace separated action script.
func ParseActions(script string) ([]Action, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	actions := make([]Action, 0, len(fields))
	for _, field := range fields {
		a, err := ParseAction(field)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
