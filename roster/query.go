package roster

import (
	"regexp"
	"strings"
)

var courseNumberToken = regexp.MustCompile(`^[0-9]+$`)

// SearchQuery is the normalized form of the free text typed into the roster search.
// The zero value matches everything.
type SearchQuery struct {
	SubjectCodePrefix  string `json:"subject_code_prefix"`
	CourseNumberPrefix string `json:"course_number_prefix,omitempty"`
	HasCourseNumber    bool   `json:"has_course_number"`
}

// Normalize turns input such as "  comp sci   200 " into the subject prefix "COMPSCI"
// and the course number prefix "200". A trailing all digit token is always read as
// the course number, so "101" alone matches course 101 of every subject.
func Normalize(raw string) SearchQuery {
	tokens := strings.Fields(strings.ToUpper(raw))
	if len(tokens) == 0 {
		return SearchQuery{}
	}

	var q SearchQuery
	if last := tokens[len(tokens)-1]; courseNumberToken.MatchString(last) {
		q.CourseNumberPrefix = last
		q.HasCourseNumber = true
		tokens = tokens[:len(tokens)-1]
	}
	q.SubjectCodePrefix = strings.Join(tokens, "")
	return q
}

func (q SearchQuery) Active() bool {
	return q.SubjectCodePrefix != "" || q.HasCourseNumber
}

// Matches reports whether a course passes the filter. Subject codes are compared
// with their whitespace removed.
func (q SearchQuery) Matches(subjectCode string, courseNumber string) bool {
	code := strings.ToUpper(strings.Join(strings.Fields(subjectCode), ""))
	if !strings.HasPrefix(code, q.SubjectCodePrefix) {
		return false
	}
	if q.HasCourseNumber && !strings.HasPrefix(strings.ToUpper(courseNumber), q.CourseNumberPrefix) {
		return false
	}
	return true
}

// String is the canonical text of the query, normalizing it again gives back q.
func (q SearchQuery) String() string {
	if !q.HasCourseNumber {
		return q.SubjectCodePrefix
	}
	if q.SubjectCodePrefix == "" {
		return q.CourseNumberPrefix
	}
	return q.SubjectCodePrefix + " " + q.CourseNumberPrefix
}
