package models

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits enforced on create and update payloads.
const (
	MaxTaskTitleLen = 500
	MaxHabitNameLen = 200
)

var (
	taskFields  = map[string]bool{"title": true, "completed": true, "deadline": true}
	habitFields = map[string]bool{"name": true, "streak": true, "progress": true}
)

// ValidateTaskPayload checks a decoded JSON object against the task
// allow-list and returns the typed fields to persist. userId is stripped
// silently; any other unexpected key fails the whole request.
func ValidateTaskPayload(raw map[string]any, create bool) (map[string]any, error) {
	delete(raw, "userId")

	if err := checkAllowList(raw, taskFields); err != nil {
		return nil, err
	}

	fields := make(map[string]any, len(raw))

	if v, ok := raw["title"]; ok {
		title, err := requireText("title", v, MaxTaskTitleLen)
		if err != nil {
			return nil, err
		}
		fields["title"] = title
	} else if create {
		return nil, invalidField("title", "required field missing")
	}

	if v, ok := raw["completed"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, invalidField("completed", "must be a boolean")
		}
		fields["completed"] = b
	}

	if v, ok := raw["deadline"]; ok {
		if v == nil {
			fields["deadline"] = nil
		} else {
			t, err := parseDate("deadline", v)
			if err != nil {
				return nil, err
			}
			fields["deadline"] = t
		}
	}

	return fields, nil
}

// ValidateHabitPayload is the habit counterpart of ValidateTaskPayload.
func ValidateHabitPayload(raw map[string]any, create bool) (map[string]any, error) {
	delete(raw, "userId")

	if err := checkAllowList(raw, habitFields); err != nil {
		return nil, err
	}

	fields := make(map[string]any, len(raw))

	if v, ok := raw["name"]; ok {
		name, err := requireText("name", v, MaxHabitNameLen)
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	} else if create {
		return nil, invalidField("name", "required field missing")
	}

	if v, ok := raw["streak"]; ok {
		n, ok := v.(float64)
		if !ok || n != float64(int(n)) {
			return nil, invalidField("streak", "must be an integer")
		}
		if n < 0 {
			return nil, invalidField("streak", "must not be negative")
		}
		fields["streak"] = int(n)
	}

	if v, ok := raw["progress"]; ok {
		entries, ok := v.([]any)
		if !ok {
			return nil, invalidField("progress", "must be an array of dates")
		}
		progress := make([]time.Time, 0, len(entries))
		for _, e := range entries {
			t, err := parseDate("progress", e)
			if err != nil {
				return nil, err
			}
			progress = append(progress, t)
		}
		fields["progress"] = progress
	}

	return fields, nil
}

func checkAllowList(raw map[string]any, allowed map[string]bool) error {
	var unknown []string
	for k := range raw {
		if !allowed[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &ValidationError{Message: "unknown fields", Fields: unknown}
	}
	return nil
}

func requireText(field string, v any, maxLen int) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidField(field, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalidField(field, "must not be empty")
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", invalidField(field, "too long")
	}
	return s, nil
}

func parseDate(field string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, invalidField(field, "must be a date string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, invalidField(field, "must be a valid date")
	}
	return t.UTC(), nil
}
