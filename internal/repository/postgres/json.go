package postgres

import (
	"encoding/json"

	"go-screening-backend/internal/domain"
)

// JSON-encoded TEXT columns. Encoding never fails for these shapes; nil
// slices are normalized to empty JSON arrays so reads round-trip cleanly.

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}

func decodeStrings(raw string) []string {
	values := []string{}
	if raw == "" {
		return values
	}
	_ = json.Unmarshal([]byte(raw), &values)
	return values
}

func encodeExperiences(experiences []domain.Experience) string {
	if experiences == nil {
		experiences = []domain.Experience{}
	}
	data, _ := json.Marshal(experiences)
	return string(data)
}

func decodeExperiences(raw string) []domain.Experience {
	experiences := []domain.Experience{}
	if raw == "" {
		return experiences
	}
	_ = json.Unmarshal([]byte(raw), &experiences)
	return experiences
}

func encodeEducation(education []domain.Education) string {
	if education == nil {
		education = []domain.Education{}
	}
	data, _ := json.Marshal(education)
	return string(data)
}

func decodeEducation(raw string) []domain.Education {
	education := []domain.Education{}
	if raw == "" {
		return education
	}
	_ = json.Unmarshal([]byte(raw), &education)
	return education
}
