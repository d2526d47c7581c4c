package roster

import (
	"context"
	"fmt"

	"github.com/Pjt727/studygroup/data/db"
	"github.com/jackc/pgx/v5/pgtype"
)

// Search runs the full aggregation over rows that were already fetched.
func Search(rawQuery string, rows []StudentRow) ([]StudentRecord, error) {
	return searchNormalized(Normalize(rawQuery), rows)
}

func searchNormalized(q SearchQuery, rows []StudentRow) ([]StudentRecord, error) {
	students, err := Group(rows, q)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if err := SortCourses(students[i].Courses); err != nil {
			return nil, fmt.Errorf("student %d: %w", students[i].ID, err)
		}
	}
	return students, nil
}

// the only query the aggregator needs, *db.Queries satisfies it
type RowSource interface {
	ListStudentCourseRows(ctx context.Context, arg db.ListStudentCourseRowsParams) ([]db.StudentCourseRow, error)
}

type Aggregator struct {
	source RowSource
}

func NewAggregator(source RowSource) *Aggregator {
	return &Aggregator{source: source}
}

// Search lists every student except excludeStudentID along with the courses that
// match rawQuery. The filter is pushed down to the data source and applied again
// while grouping.
func (a *Aggregator) Search(ctx context.Context, excludeStudentID int32, rawQuery string) ([]StudentRecord, error) {
	q := Normalize(rawQuery)
	rows, err := a.source.ListStudentCourseRows(ctx, db.ListStudentCourseRowsParams{
		ExcludeStudentID:   excludeStudentID,
		SubjectCodePrefix:  q.SubjectCodePrefix,
		CourseNumberPrefix: pgtype.Text{String: q.CourseNumberPrefix, Valid: q.HasCourseNumber},
	})
	if err != nil {
		return nil, fmt.Errorf("could not list student course rows: %w", err)
	}
	return searchNormalized(q, rows)
}
