package domain

import "strings"

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func appendDetail(details []Detail, label, value string) []Detail {
	if value == "" {
		return details
	}
	return append(details, Detail{Label: label, Value: value})
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
