package java

// Policy selects how an installed version is matched against a requirement
type Policy int

const (
	// AtLeast accepts the required version or anything newer
	AtLeast Policy = iota
	// ExactMatch accepts only the required version
	ExactMatch
)

func (p Policy) String() string {
	if p == ExactMatch {
		return "exact"
	}
	return "at-least"
}

// Requirement is the version constraint supplied by the caller.
// The zero value means no requirement was given.
type Requirement struct {
	Policy  Policy
	Target  Version
	Raw     string // version text as typed by the caller
	Present bool
}

// NewRequirement parses text into a requirement with the given policy
func NewRequirement(policy Policy, text string) (Requirement, error) {
	target, err := ParseVersion(text)
	if err != nil {
		return Requirement{}, err
	}

	return Requirement{
		Policy:  policy,
		Target:  target,
		Raw:     text,
		Present: true,
	}, nil
}

// Satisfies decides whether installed meets req.
//
// AtLeast compares Feature, Interim and Patch in order. Update is never
// consulted for AtLeast, so 17.0.2.0 and 17.0.2.9 are treated alike.
func Satisfies(installed Version, req Requirement) bool {
	if !req.Present {
		return true
	}

	want := req.Target
	if req.Policy == ExactMatch {
		return installed == want
	}

	pairs := [][2]int{
		{installed.Feature, want.Feature},
		{installed.Interim, want.Interim},
		{installed.Patch, want.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return false
		}
		if p[0] > p[1] {
			return true
		}
	}
	return true
}
