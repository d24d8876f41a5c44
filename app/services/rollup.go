package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// ErrScopeMismatch is returned when a semester id does not belong to the
// supplied academic year.
var ErrScopeMismatch = errors.New("semester does not belong to academic year")

// ResultSource reads raw exam-result rows for a scope. An empty slice is a
// valid answer for a scope with no results.
type ResultSource interface {
	ResultsForSemester(academicYearID, semesterID string) ([]*models.ExamResult, error)
	ResultsForYear(academicYearID string) ([]*models.ExamResult, error)
}

// SummarySink replaces all summary rows for a scope in one atomic unit.
// On failure the prior rows for the scope must remain unchanged.
type SummarySink interface {
	ReplaceSemesterResults(academicYearID, semesterID string, rows []*models.SemesterResult) error
	ReplaceYearlyResults(academicYearID string, rows []*models.YearlyResult) error
}

// Standing is the computed total/average/rank for one student within a scope
type Standing struct {
	StudentID    string
	TotalMarks   float64
	AverageScore float64
	Rank         int
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// rollUp groups raw exam results by student, reduces each group to
// total/average, and ranks students against each other.
//
// Total is the sum of marks over all (exam, subject) entries the student
// has; average is total divided by the entry count. Students with no rows
// simply do not appear, and subjects a student has no results for are not
// zero-filled.
//
// Ranking is by descending average, ties broken by descending total.
// Students still tied after both keys share a rank, and the next distinct
// student skips past them (competition ranking: 1, 2, 2, 4). The returned
// slice is ordered by rank, then student id, so repeated runs over the same
// input produce identical output.
func rollUp(results []*models.ExamResult) []Standing {
	type tally struct {
		total   float64
		entries int
	}

	totals := make(map[string]*tally)
	for _, r := range results {
		t, ok := totals[r.StudentID]
		if !ok {
			t = &tally{}
			totals[r.StudentID] = t
		}
		t.total += r.Marks
		t.entries++
	}

	standings := make([]Standing, 0, len(totals))
	for studentID, t := range totals {
		standings = append(standings, Standing{
			StudentID:    studentID,
			TotalMarks:   round2(t.total),
			AverageScore: round2(t.total / float64(t.entries)),
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		if a.TotalMarks != b.TotalMarks {
			return a.TotalMarks > b.TotalMarks
		}
		return a.StudentID < b.StudentID
	})

	rank := 1
	for i := range standings {
		if i > 0 && (standings[i].AverageScore != standings[i-1].AverageScore ||
			standings[i].TotalMarks != standings[i-1].TotalMarks) {
			rank = i + 1
		}
		standings[i].Rank = rank
	}

	return standings
}

// ComputeSemesterResults computes and persists a SemesterResult for every
// student with at least one exam result in the given semester. A scope with
// no results yields an empty set and writes nothing; existing summary rows
// are left untouched.
func ComputeSemesterResults(src ResultSource, sink SummarySink, academicYearID, semesterID string) ([]*models.SemesterResult, error) {
	results, err := src.ResultsForSemester(academicYearID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semester exam results: %w", err)
	}

	standings := rollUp(results)
	if len(standings) == 0 {
		return []*models.SemesterResult{}, nil
	}

	rows := make([]*models.SemesterResult, len(standings))
	for i, s := range standings {
		rows[i] = &models.SemesterResult{
			StudentID:      s.StudentID,
			AcademicYearID: academicYearID,
			SemesterID:     semesterID,
			TotalMarks:     s.TotalMarks,
			AverageScore:   s.AverageScore,
			Rank:           s.Rank,
		}
	}

	if err := sink.ReplaceSemesterResults(academicYearID, semesterID, rows); err != nil {
		return nil, fmt.Errorf("failed to store semester results: %w", err)
	}

	return rows, nil
}

// ComputeYearlyResults computes and persists a YearlyResult for every
// student with at least one exam result anywhere in the given academic
// year. It always recomputes from raw exam results rather than summing
// semester summaries: a student missing a semester would otherwise be
// silently misweighted.
func ComputeYearlyResults(src ResultSource, sink SummarySink, academicYearID string) ([]*models.YearlyResult, error) {
	results, err := src.ResultsForYear(academicYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch yearly exam results: %w", err)
	}

	standings := rollUp(results)
	if len(standings) == 0 {
		return []*models.YearlyResult{}, nil
	}

	rows := make([]*models.YearlyResult, len(standings))
	for i, s := range standings {
		rows[i] = &models.YearlyResult{
			StudentID:      s.StudentID,
			AcademicYearID: academicYearID,
			TotalMarks:     s.TotalMarks,
			AverageScore:   s.AverageScore,
			Rank:           s.Rank,
		}
	}

	if err := sink.ReplaceYearlyResults(academicYearID, rows); err != nil {
		return nil, fmt.Errorf("failed to store yearly results: %w", err)
	}

	return rows, nil
}
