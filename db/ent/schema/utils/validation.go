// Package utils holds field validators shared by the ent schemas.
package utils

import "fmt"

// EnumValidator restricts a string field to a fixed value set, used for
// parse-run statuses. Values are compared exactly; statuses are stored
// upper-case.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
