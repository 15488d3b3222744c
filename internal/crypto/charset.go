package crypto

import "strings"

const (
	numberChars    = "0123456789"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	specialChars   = "!\"@#$%^&*()_+-=[]\\{}|;:',.<>?/`~"
)

// Class identifies one of the fixed character sets a password can draw from.
type Class int

const (
	Numbers Class = iota
	Lowercase
	Uppercase
	Special
)

type classInfo struct {
	name       string
	chars      string
	label      string
	shortLabel string
}

// registry is indexed by Class and never modified.
var registry = [...]classInfo{
	Numbers:   {name: "numbers", chars: numberChars, label: "Numbers (0-9)", shortLabel: "Numbers"},
	Lowercase: {name: "lowercase", chars: lowercaseChars, label: "Lowercase (a-z)", shortLabel: "Lowercase"},
	Uppercase: {name: "uppercase", chars: uppercaseChars, label: "Uppercase (A-Z)", shortLabel: "Uppercase"},
	Special:   {name: "special", chars: specialChars, label: "Special characters", shortLabel: "Special"},
}

// AllClasses returns every class in registry order.
func AllClasses() []Class {
	return []Class{Numbers, Lowercase, Uppercase, Special}
}

// Valid reports whether c is a known class.
func (c Class) Valid() bool {
	return c >= Numbers && int(c) < len(registry)
}

// Chars returns the literal character set of c, or "" for an unknown class.
func (c Class) Chars() string {
	if !c.Valid() {
		return ""
	}
	return registry[c].chars
}

// Label returns the menu label, e.g. "Numbers (0-9)".
func (c Class) Label() string {
	if !c.Valid() {
		return ""
	}
	return registry[c].label
}

func (c Class) ShortLabel() string {
	if !c.Valid() {
		return ""
	}
	return registry[c].shortLabel
}

func (c Class) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return registry[c].name
}

// ParseClass maps a class name such as "lowercase" to its Class.
func ParseClass(name string) (Class, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range registry {
		if info.name == name {
			return Class(i), true
		}
	}
	return 0, false
}

// ClassNames returns the names of classes joined with ", ".
func ClassNames(classes []Class) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
