package validation

import (
	"sort"
	"strings"
)

// ModelState collects field-level and form-level validation messages.
type ModelState struct {
	fields map[string][]string
	form   []string
}

// IsValid reports whether no error was recorded.
func (m *ModelState) IsValid() bool {
	if m == nil {
		return true
	}
	return len(m.fields) == 0 && len(m.form) == 0
}

// AddError records message against field. An empty field records a
// form-level message. Blank and duplicate messages are ignored.
func (m *ModelState) AddError(field, message string) {
	field = strings.TrimSpace(field)
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if isFormLevelKey(field) {
		m.form = MergeMessages(m.form, message)
		return
	}
	if m.fields == nil {
		m.fields = make(map[string][]string)
	}
	m.fields[field] = MergeMessages(m.fields[field], message)
}

// Merge copies every message from other into m.
func (m *ModelState) Merge(other *ModelState) {
	if other == nil {
		return
	}
	for field, messages := range other.fields {
		for _, message := range messages {
			m.AddError(field, message)
		}
	}
	for _, message := range other.form {
		m.AddError("", message)
	}
}

// Errors returns a copy of the field messages, or nil when there are none.
func (m *ModelState) Errors() map[string][]string {
	if m == nil || len(m.fields) == 0 {
		return nil
	}
	out := make(map[string][]string, len(m.fields))
	for field, messages := range m.fields {
		out[field] = append([]string(nil), messages...)
	}
	return out
}

// FormErrors returns messages not tied to a field.
func (m *ModelState) FormErrors() []string {
	if m == nil || len(m.form) == 0 {
		return nil
	}
	return append([]string(nil), m.form...)
}

// First returns the first message recorded for field.
func (m *ModelState) First(field string) string {
	if m == nil {
		return ""
	}
	messages := m.fields[strings.TrimSpace(field)]
	if len(messages) == 0 {
		return ""
	}
	return messages[0]
}

// Fields lists the invalid field names in sorted order.
func (m *ModelState) Fields() []string {
	if m == nil || len(m.fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MergeMessages concatenates and normalises message slices, trimming
// whitespace and removing duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "form", "__all__", "non_field_errors":
		return true
	default:
		return false
	}
}
