package extraction

import (
	"regexp"
	"strings"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/logger"
)

// Heuristic pattern families for mining employment and education records
// from unstructured resume text. Hits from different families are kept
// un-merged: recall over precision. NormalizeExperiences/NormalizeEducation
// offer the optional dedup step.
var (
	// "<role> at|@ <company> [from|for] <year or year-range>"
	experienceWithDuration = regexp.MustCompile(`(?i)(\w+)\s*(?:at|@)\s*(\w+(?:\s+\w+)*)\s*(?:from|for)?\s*(\d{4}(?:\s*-\s*\d{4})?)`)
	// "<role phrase> experience|worked at|@ <company>"
	experienceNoDuration = regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s*(?:experience|worked)\s*(?:at|@)\s*(\w+(?:\s+\w+)*)`)
	// "<degree phrase> degree|graduated [from] <institution> [in] <field>"
	educationWithYear = regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s*(?:degree|graduated)\s*(?:from)?\s*(\w+(?:\s+\w+)*)\s*(?:in)?\s*(\w+(?:\s+\w+)*)`)
	// "<degree phrase> at|@ <institution> graduated|completed"
	educationNoYear = regexp.MustCompile(`(?i)(\w+(?:\s+\w+)*)\s*(?:at|@)\s*(\w+(?:\s+\w+)*)\s*(?:graduated|completed)`)
)

// ExtractExperiences mines employment records from resume text. It never
// returns an error: an internal fault is logged and yields an empty slice.
func ExtractExperiences(resumeText string) (experiences []domain.Experience) {
	defer func() {
		if r := recover(); r != nil {
			logExtractionFault("experience", r)
			experiences = nil
		}
	}()

	for _, match := range experienceWithDuration.FindAllStringSubmatch(resumeText, -1) {
		experiences = append(experiences, domain.Experience{
			Role:     match[1],
			Company:  match[2],
			Duration: orUnknown(match[3]),
		})
	}
	for _, match := range experienceNoDuration.FindAllStringSubmatch(resumeText, -1) {
		experiences = append(experiences, domain.Experience{
			Role:     match[1],
			Company:  match[2],
			Duration: domain.UnknownSentinel,
		})
	}
	return experiences
}

// ExtractEducation mines education records from resume text. Same contract
// as ExtractExperiences.
func ExtractEducation(resumeText string) (education []domain.Education) {
	defer func() {
		if r := recover(); r != nil {
			logExtractionFault("education", r)
			education = nil
		}
	}()

	for _, match := range educationWithYear.FindAllStringSubmatch(resumeText, -1) {
		education = append(education, domain.Education{
			Degree:      match[1],
			Institution: match[2],
			Year:        orUnknown(match[3]),
		})
	}
	for _, match := range educationNoYear.FindAllStringSubmatch(resumeText, -1) {
		education = append(education, domain.Education{
			Degree:      match[1],
			Institution: match[2],
			Year:        domain.UnknownSentinel,
		})
	}
	return education
}

// NormalizeExperiences merges duplicate hits across pattern families keyed
// on lowercased (role, company), preferring the record with a captured
// duration. Order of first appearance is preserved.
func NormalizeExperiences(experiences []domain.Experience) []domain.Experience {
	merged := make([]domain.Experience, 0, len(experiences))
	index := make(map[string]int, len(experiences))

	for _, exp := range experiences {
		key := strings.ToLower(exp.Role) + "\x00" + strings.ToLower(exp.Company)
		if i, ok := index[key]; ok {
			if merged[i].Duration == domain.UnknownSentinel && exp.Duration != domain.UnknownSentinel {
				merged[i].Duration = exp.Duration
			}
			continue
		}
		index[key] = len(merged)
		merged = append(merged, exp)
	}
	return merged
}

// NormalizeEducation is the education counterpart of NormalizeExperiences,
// keyed on lowercased (degree, institution).
func NormalizeEducation(education []domain.Education) []domain.Education {
	merged := make([]domain.Education, 0, len(education))
	index := make(map[string]int, len(education))

	for _, edu := range education {
		key := strings.ToLower(edu.Degree) + "\x00" + strings.ToLower(edu.Institution)
		if i, ok := index[key]; ok {
			if merged[i].Year == domain.UnknownSentinel && edu.Year != domain.UnknownSentinel {
				merged[i].Year = edu.Year
			}
			continue
		}
		index[key] = len(merged)
		merged = append(merged, edu)
	}
	return merged
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.UnknownSentinel
	}
	return s
}

func logExtractionFault(stage string, recovered any) {
	if logger.Log == nil {
		return
	}
	failure := &domain.ExtractionFailure{Stage: stage}
	logger.Log.Error("non-fatal extraction fault", "stage", stage, "error", failure.Error(), "cause", recovered)
}
