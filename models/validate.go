package models

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/rpupo63/travel-blog-backend/errs"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// All lists every persisted model in dependency order.
func All() []any {
	return []any{
		&User{},
		&Diary{},
		&BlogPost{},
		&Comment{},
		&Newsletter{},
		&Contact{},
		&GalleryImage{},
	}
}

// requireText reports whether the field is present and not blank, recording a failure otherwise.
func requireText(fe *errs.FieldErrors, field string, value *string) bool {
	if value == nil || isBlank(*value) {
		fe.Required(field)
		return false
	}
	return true
}

func requireSlug(fe *errs.FieldErrors, field string, value *string) {
	if !requireText(fe, field, value) {
		return
	}
	if !slugPattern.MatchString(*value) {
		fe.Add(field, "Must contain only lowercase letters, digits and single hyphens")
	}
}

func requireReadTime(fe *errs.FieldErrors, field string, value *int) {
	switch {
	case value == nil:
		fe.Required(field)
	case *value < 0:
		fe.Add(field, "Must not be negative")
	}
}

func checkList(fe *errs.FieldErrors, field string, values []string) {
	for _, v := range values {
		if isBlank(v) {
			fe.Add(field, "Entries must not be empty")
			return
		}
	}
}

func checkEmail(fe *errs.FieldErrors, field, value string) {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Name != "" {
		fe.Add(field, "Invalid email")
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// cleanList trims entries and never returns nil, so empty lists serialize as [].
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
