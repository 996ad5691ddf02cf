package scoring

import (
	"encoding/json"
	"fmt"
)

// Answer is a captured answer value: either a single string or an
// unordered set of strings (matching questions). The two-armed variant
// keeps correctness comparison exhaustive instead of runtime-checked.
type Answer struct {
	single string
	multi  []string
	isSet  bool
}

// Single wraps a single-valued answer.
func Single(value string) Answer {
	return Answer{single: value}
}

// Multi wraps a set-valued answer. Order is irrelevant; duplicates are
// preserved as given and rejected by set comparison.
func Multi(values ...string) Answer {
	set := make([]string, len(values))
	copy(set, values)
	return Answer{multi: set, isSet: true}
}

// IsSet reports whether the answer is set-valued.
func (a Answer) IsSet() bool { return a.isSet }

// Value returns the single value. Empty for set-valued answers.
func (a Answer) Value() string { return a.single }

// Values returns a copy of the set values. Nil for single-valued answers.
func (a Answer) Values() []string {
	if !a.isSet {
		return nil
	}
	out := make([]string, len(a.multi))
	copy(out, a.multi)
	return out
}

// IsZero reports whether no answer was captured.
func (a Answer) IsZero() bool {
	return !a.isSet && a.single == ""
}

// Display returns a human-readable rendition of the answer.
func (a Answer) Display() string {
	if a.isSet {
		return fmt.Sprintf("%v", a.multi)
	}
	return a.single
}

// MarshalJSON encodes single answers as a JSON string and set answers as
// a JSON array, matching the stored result format.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isSet {
		return json.Marshal(a.multi)
	}
	return json.Marshal(a.single)
}

// UnmarshalJSON accepts either a JSON string or a JSON string array.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Single(s)
		return nil
	}
	var set []string
	if err := json.Unmarshal(data, &set); err != nil {
		return fmt.Errorf("answer must be a string or string array: %w", err)
	}
	*a = Multi(set...)
	return nil
}

// setsEqual reports exact set equality: both sides contain exactly the
// same elements, order-independent. Duplicate submissions break equality.
func setsEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	remaining := make(map[string]int, len(want))
	for _, w := range want {
		remaining[w]++
	}
	for _, g := range got {
		if remaining[g] == 0 {
			return false
		}
		remaining[g]--
	}
	return true
}
