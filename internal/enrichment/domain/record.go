// Package domain defines the company data resolved for a lead.
package domain

// Record holds the optional company attributes resolved for a contact.
// Every field is independently optional; a nil field is a meaningful,
// scored state rather than an error. A Record is never merged across
// provider calls.
type Record struct {
	CompanyName *string
	CompanySize *string // free-text bucket such as "11-50" or "500+"
	Industry    *string
	Country     *string // two-letter-ish code, case-insensitive
}

// Empty reports whether no field carries a value.
func (r Record) Empty() bool {
	return Value(r.CompanyName) == "" &&
		Value(r.CompanySize) == "" &&
		Value(r.Industry) == "" &&
		Value(r.Country) == ""
}

// Value returns the string behind p, or "" when p is nil. Whitespace is
// kept: a field holding only spaces is present.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Optional returns a pointer to s, or nil when s is empty.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
