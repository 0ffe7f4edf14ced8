package vlnv

import (
	"fmt"
	"regexp"
	"strings"
)

// VLNV is the identity of a design document.
type VLNV struct {
	Vendor  string
	Library string
	Name    string
	Version string
}

// fieldRegex restricts fields to characters that are safe inside dotted
// memory identifiers and HCL labels.
var fieldRegex = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

// New creates a VLNV from its four parts without validation.
func New(vendor, library, name, version string) VLNV {
	return VLNV{Vendor: vendor, Library: library, Name: name, Version: version}
}

// Parse creates a VLNV from its canonical string representation.
func Parse(raw string) (VLNV, error) {
	if raw == "" {
		return VLNV{}, fmt.Errorf("vlnv cannot be empty")
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return VLNV{}, fmt.Errorf("invalid vlnv %q: expected vendor:library:name[:version]", raw)
	}

	for i, part := range parts {
		if part == "" {
			if i == 3 {
				continue
			}
			return VLNV{}, fmt.Errorf("invalid vlnv %q: field %d is empty", raw, i+1)
		}
		if !fieldRegex.MatchString(part) {
			return VLNV{}, fmt.Errorf("invalid vlnv %q: field %q contains illegal characters", raw, part)
		}
	}

	v := VLNV{Vendor: parts[0], Library: parts[1], Name: parts[2]}
	if len(parts) == 4 {
		v.Version = parts[3]
	}
	return v, nil
}

// MustParse is like Parse but panics on error. For tests and constants.
func MustParse(raw string) VLNV {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// String serializes the VLNV into its canonical colon-separated form.
func (v VLNV) String() string {
	if v.IsZero() {
		return ""
	}
	return strings.Join([]string{v.Vendor, v.Library, v.Name, v.Version}, ":")
}

// DotString is the form used inside memory identifiers: every colon of the
// canonical form replaced by a period.
func (v VLNV) DotString() string {
	return strings.ReplaceAll(v.String(), ":", ".")
}

// IsValid reports whether vendor, library and name are all set.
func (v VLNV) IsValid() bool {
	return v.Vendor != "" && v.Library != "" && v.Name != ""
}

// IsZero reports whether no field is set.
func (v VLNV) IsZero() bool {
	return v == VLNV{}
}

// HasVersion reports whether the reference pins a version.
func (v VLNV) HasVersion() bool {
	return v.Version != ""
}

// Unversioned returns the vendor:library:name part as a key for grouping
// versions of the same document.
func (v VLNV) Unversioned() string {
	return strings.Join([]string{v.Vendor, v.Library, v.Name}, ":")
}
