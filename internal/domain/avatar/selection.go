package avatar

import (
	"fmt"
	"strings"
)

// BodyType selects the avatar creation flow.
type BodyType int

const (
	BodyTypeNone BodyType = iota
	BodyTypeFullBody
	BodyTypeHalfBody
	// BodyTypeSelect lets the end user pick inside the web page.
	BodyTypeSelect
)

// String returns the config spelling of the body type.
func (b BodyType) String() string {
	switch b {
	case BodyTypeFullBody:
		return "fullbody"
	case BodyTypeHalfBody:
		return "halfbody"
	case BodyTypeSelect:
		return "select"
	default:
		return "none"
	}
}

// ParseBodyType accepts "", "none", "fullbody", "halfbody" and "select".
func ParseBodyType(s string) (BodyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BodyTypeNone, nil
	case "fullbody":
		return BodyTypeFullBody, nil
	case "halfbody":
		return BodyTypeHalfBody, nil
	case "select":
		return BodyTypeSelect, nil
	}
	return BodyTypeNone, fmt.Errorf("unknown body type %q", s)
}

// Gender preselects the avatar gender.
type Gender int

const (
	GenderNone Gender = iota
	GenderMale
	GenderFemale
)

// String returns the config spelling of the gender.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "none"
	}
}

// ParseGender accepts "", "none", "male" and "female".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return GenderNone, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	}
	return GenderNone, fmt.Errorf("unknown gender %q", s)
}
