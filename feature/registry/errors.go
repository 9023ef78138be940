package registry

import "fmt"

// UnknownClubNameError is returned when a raw club name cannot be resolved
// against the vocabulary of its source. It always carries the offending
// string and the source it was looked up under.
type UnknownClubNameError struct {
	// Name is the raw string that failed to resolve.
	Name string
	// Source is the vocabulary the lookup ran against.
	Source Source
}

func (e *UnknownClubNameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("empty club name for source %q", e.Source)
	}
	return fmt.Sprintf("unknown club name %q for source %q", e.Name, e.Source)
}

// AmbiguousAliasError is a registry-construction failure: two different clubs
// claim the same alias within one source vocabulary. It is detected eagerly
// at build time, never deferred to lookup time.
type AmbiguousAliasError struct {
	// Alias is the conflicting raw string.
	Alias string
	// Source is the vocabulary the conflict occurred in.
	Source Source
	// First and Second are the canonical names of the two claimants.
	First  string
	Second string
}

func (e *AmbiguousAliasError) Error() string {
	return fmt.Sprintf("alias %q in source %q claimed by both %q and %q",
		e.Alias, e.Source, e.First, e.Second)
}

// SchemaError is returned when an input table lacks the declared club-name
// column.
type SchemaError struct {
	// Column is the missing column name.
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input table has no column %q", e.Column)
}
