package predictor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/zpredict/prediction-service/internal/domain"
)

// streamAliases maps common stream spellings to the keys of the valid-courses
// map. The table is scanned in order and the first alias contained in the
// normalized input wins, so the order doubles as the tie-break for inputs that
// could match more than one alias.
var streamAliases = []struct {
	alias string
	key   string
}{
	{"physical", "Physical Science"},
	{"biological", "Biological Science"},
	{"biosystems", "Biosystems Technology"},
	{"commerce", "Commerce"},
	{"engineering", "Engineering Technology"},
	{"arts", "Arts"},
	{"other", "Other"},
}

// AvailableCourses resolves a free-form stream name and enumerates
// (course, university) pairs up to limit. The enumeration is deterministic:
// course-major, university-minor, with universities taken from the feature
// encoder's first category group (trimmed, deduplicated, first-seen order).
// An unresolvable stream yields an empty slice, never an error.
func (p *Predictor) AvailableCourses(stream string, limit int) ([]domain.CourseOption, error) {
	b, err := p.loader.Load()
	if err != nil {
		return nil, err
	}
	if b.ValidCourses == nil {
		p.log.Warn("valid courses map not loaded")
		return nil, nil
	}
	if b.FeatureEncoder == nil {
		p.log.Warn("feature encoder not loaded, cannot enumerate universities")
		return nil, nil
	}

	streamKey := resolveStream(stream, b.ValidCourses)
	if streamKey == "" {
		p.log.Warn("stream not found in valid courses map",
			zap.String("stream", stream),
			zap.Strings("available_streams", mapKeys(b.ValidCourses)))
		return nil, nil
	}

	courses := b.ValidCourses[streamKey]
	if len(courses) == 0 {
		p.log.Warn("no courses found for stream", zap.String("stream", streamKey))
		return nil, nil
	}

	universities := dedupeTrimmed(b.FeatureEncoder.Categories[0])
	if len(universities) == 0 {
		p.log.Warn("no universities found in feature encoder")
		return nil, nil
	}

	maxCoursesPerStream := limit / len(universities)
	if maxCoursesPerStream < 1 {
		maxCoursesPerStream = 1
	}
	if maxCoursesPerStream > len(courses) {
		maxCoursesPerStream = len(courses)
	}

	var pairs []domain.CourseOption
	for _, course := range courses[:maxCoursesPerStream] {
		for _, university := range universities {
			pairs = append(pairs, domain.CourseOption{
				CourseName:     course,
				UniversityName: university,
			})
			if len(pairs) >= limit {
				return pairs, nil
			}
		}
	}
	return pairs, nil
}

// resolveStream tries an exact key match first, then scans the alias table by
// substring containment against the lowercased, trimmed input.
func resolveStream(stream string, validCourses map[string][]string) string {
	if _, ok := validCourses[stream]; ok {
		return stream
	}
	normalized := strings.TrimSpace(strings.ToLower(stream))
	for _, entry := range streamAliases {
		if strings.Contains(normalized, entry.alias) {
			return entry.key
		}
	}
	return ""
}

func dedupeTrimmed(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}

func mapKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
