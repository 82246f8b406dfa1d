package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const patientAvatarBase = "https://placehold.co/40x40.png?text="

var whitespace = regexp.MustCompile(`\s+`)

// ExtractNameParts splits a name into parts, treating zero-width non-joiners as separators
func ExtractNameParts(name string) []string {
	name = strings.ReplaceAll(name, "\u200c", " ")
	var parts []string
	for _, part := range whitespace.Split(name, -1) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// Initials returns the first letter of the first and last name parts,
// or the first letter alone for a single-part name.
// Letters are taken per rune so Arabic names produce whole characters.
func Initials(name string) string {
	parts := ExtractNameParts(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return firstRune(parts[0])
	default:
		return firstRune(parts[0]) + firstRune(parts[len(parts)-1])
	}
}

// PatientAvatarURL builds the placeholder avatar shown next to a patient
func PatientAvatarURL(name string) string {
	return patientAvatarBase + Initials(name)
}

// DoctorTitle prefixes a doctor's name with the Arabic "Dr." abbreviation
func DoctorTitle(name string) string {
	return fmt.Sprintf("د. %s", name)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(r)
}
