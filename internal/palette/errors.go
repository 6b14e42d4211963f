package palette

import "fmt"

// MissingReferenceError reports an alias chain that reached a name the
// palette does not define.
type MissingReferenceError struct {
	Key    string // entry whose chain was being resolved
	Target string // name the chain dangled on
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("palette entry %q references undefined color %q", e.Key, e.Target)
}

// CycleError reports an alias chain that revisited a name within a single
// walk. Name is the entry at which the cycle closed.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("alias cycle detected at color %q", e.Name)
}

// UnknownColorError reports a lookup for a name absent from the resolved
// palette.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color %q", e.Name)
}

// StrictLookupError reports a strict CSS hash lookup for an absent key.
type StrictLookupError struct {
	Name string
}

func (e *StrictLookupError) Error() string {
	return fmt.Sprintf("no CSS value for color %q", e.Name)
}
