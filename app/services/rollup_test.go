package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philconrad24/Student-Management-System/app/models"
)

// fakeStore implements ResultSource and SummarySink in memory so the
// engine can be tested without a database.
type fakeStore struct {
	semesterResults map[string][]*models.ExamResult // key: year|semester
	yearResults     map[string][]*models.ExamResult // key: year

	semesterRows map[string][]*models.SemesterResult
	yearlyRows   map[string][]*models.YearlyResult

	fetchErr   error
	replaceErr error

	replaceCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		semesterResults: make(map[string][]*models.ExamResult),
		yearResults:     make(map[string][]*models.ExamResult),
		semesterRows:    make(map[string][]*models.SemesterResult),
		yearlyRows:      make(map[string][]*models.YearlyResult),
	}
}

func scopeKey(academicYearID, semesterID string) string {
	return academicYearID + "|" + semesterID
}

func (f *fakeStore) ResultsForSemester(academicYearID, semesterID string) ([]*models.ExamResult, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.semesterResults[scopeKey(academicYearID, semesterID)], nil
}

func (f *fakeStore) ResultsForYear(academicYearID string) ([]*models.ExamResult, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.yearResults[academicYearID], nil
}

func (f *fakeStore) ReplaceSemesterResults(academicYearID, semesterID string, rows []*models.SemesterResult) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.semesterRows[scopeKey(academicYearID, semesterID)] = rows
	return nil
}

func (f *fakeStore) ReplaceYearlyResults(academicYearID string, rows []*models.YearlyResult) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.yearlyRows[academicYearID] = rows
	return nil
}

func result(studentID string, marks float64) *models.ExamResult {
	return &models.ExamResult{
		StudentID: studentID,
		ExamID:    "exam-1",
		SubjectID: fmt.Sprintf("subject-%f", marks),
		Marks:     marks,
	}
}

func TestRollUpTotalsAndAverages(t *testing.T) {
	standings := rollUp([]*models.ExamResult{
		result("s1", 80),
		result("s1", 90),
		result("s2", 70),
	})

	require.Len(t, standings, 2)

	assert.Equal(t, "s1", standings[0].StudentID)
	assert.Equal(t, 170.0, standings[0].TotalMarks)
	assert.Equal(t, 85.0, standings[0].AverageScore)
	assert.Equal(t, 1, standings[0].Rank)

	assert.Equal(t, "s2", standings[1].StudentID)
	assert.Equal(t, 70.0, standings[1].TotalMarks)
	assert.Equal(t, 70.0, standings[1].AverageScore)
	assert.Equal(t, 2, standings[1].Rank)
}

func TestRollUpEmptyInput(t *testing.T) {
	assert.Empty(t, rollUp(nil))
	assert.Empty(t, rollUp([]*models.ExamResult{}))
}

func TestRollUpPartialSubjectCoverage(t *testing.T) {
	// s2 sat only one exam; their average uses only the entries they have,
	// no zero-fill for the subject they missed.
	standings := rollUp([]*models.ExamResult{
		result("s1", 60),
		result("s1", 60),
		result("s2", 90),
	})

	require.Len(t, standings, 2)
	assert.Equal(t, "s2", standings[0].StudentID)
	assert.Equal(t, 90.0, standings[0].AverageScore)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "s1", standings[1].StudentID)
	assert.Equal(t, 120.0, standings[1].TotalMarks)
	assert.Equal(t, 2, standings[1].Rank)
}

func TestRollUpCompetitionRanking(t *testing.T) {
	// S1 (80, 90) and S3 (90, 80) tie on both average and total and share
	// rank 1; S2 takes rank 3, not 2.
	standings := rollUp([]*models.ExamResult{
		result("S1", 80),
		result("S1", 90),
		result("S2", 70),
		result("S2", 70),
		result("S3", 90),
		result("S3", 80),
	})

	require.Len(t, standings, 3)

	ranks := make(map[string]int)
	for _, s := range standings {
		ranks[s.StudentID] = s.Rank
	}

	assert.Equal(t, 1, ranks["S1"])
	assert.Equal(t, 1, ranks["S3"])
	assert.Equal(t, 3, ranks["S2"])
}

func TestRollUpTieBrokenByTotal(t *testing.T) {
	// Same average, different totals: the higher total ranks first and the
	// two students do not share a rank.
	standings := rollUp([]*models.ExamResult{
		result("one-exam", 80),
		result("two-exams", 80),
		result("two-exams", 80),
	})

	require.Len(t, standings, 2)
	assert.Equal(t, "two-exams", standings[0].StudentID)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "one-exam", standings[1].StudentID)
	assert.Equal(t, 2, standings[1].Rank)
}

func TestRollUpRankGapAfterLargeTie(t *testing.T) {
	// Three students tied at rank 1; the next distinct student gets rank 4.
	standings := rollUp([]*models.ExamResult{
		result("a", 90),
		result("b", 90),
		result("c", 90),
		result("d", 50),
	})

	require.Len(t, standings, 4)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 1, standings[1].Rank)
	assert.Equal(t, 1, standings[2].Rank)
	assert.Equal(t, 4, standings[3].Rank)
}

func TestRollUpRankMonotonicity(t *testing.T) {
	standings := rollUp([]*models.ExamResult{
		result("a", 95),
		result("b", 75),
		result("c", 85),
		result("d", 65),
		result("e", 85),
	})

	for i := 1; i < len(standings); i++ {
		prev, cur := standings[i-1], standings[i]
		if prev.AverageScore > cur.AverageScore {
			assert.Less(t, prev.Rank, cur.Rank,
				"higher average must rank strictly better")
		}
		if prev.AverageScore == cur.AverageScore && prev.TotalMarks == cur.TotalMarks {
			assert.Equal(t, prev.Rank, cur.Rank,
				"fully tied students must share a rank")
		}
	}
}

func TestComputeSemesterResults(t *testing.T) {
	store := newFakeStore()
	store.semesterResults[scopeKey("year-1", "sem-1")] = []*models.ExamResult{
		result("s1", 80),
		result("s1", 90),
		result("s2", 70),
		result("s2", 70),
	}

	rows, err := ComputeSemesterResults(store, store, "year-1", "sem-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, rows, store.semesterRows[scopeKey("year-1", "sem-1")])

	assert.Equal(t, "s1", rows[0].StudentID)
	assert.Equal(t, "year-1", rows[0].AcademicYearID)
	assert.Equal(t, "sem-1", rows[0].SemesterID)
	assert.Equal(t, 170.0, rows[0].TotalMarks)
	assert.Equal(t, 85.0, rows[0].AverageScore)
	assert.Equal(t, 1, rows[0].Rank)

	assert.Equal(t, "s2", rows[1].StudentID)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestComputeSemesterResultsEmptyScope(t *testing.T) {
	store := newFakeStore()
	store.semesterRows[scopeKey("year-1", "sem-1")] = []*models.SemesterResult{
		{StudentID: "stale", Rank: 1},
	}

	rows, err := ComputeSemesterResults(store, store, "year-1", "sem-1")
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Nothing is written or deleted for an empty scope.
	assert.Zero(t, store.replaceCalls)
	assert.Len(t, store.semesterRows[scopeKey("year-1", "sem-1")], 1)
}

func TestComputeSemesterResultsScopeMismatch(t *testing.T) {
	store := newFakeStore()
	store.fetchErr = ErrScopeMismatch

	rows, err := ComputeSemesterResults(store, store, "year-1", "sem-of-other-year")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScopeMismatch))
	assert.Nil(t, rows)
	assert.Zero(t, store.replaceCalls)
}

func TestComputeSemesterResultsPersistenceFailure(t *testing.T) {
	store := newFakeStore()
	store.semesterResults[scopeKey("year-1", "sem-1")] = []*models.ExamResult{
		result("s1", 80),
	}
	prior := []*models.SemesterResult{{StudentID: "prior", Rank: 1}}
	store.semesterRows[scopeKey("year-1", "sem-1")] = prior
	store.replaceErr = errors.New("storage unavailable")

	rows, err := ComputeSemesterResults(store, store, "year-1", "sem-1")
	require.Error(t, err)
	assert.Nil(t, rows)

	// Prior summary rows for the scope survive the failed replace.
	assert.Equal(t, prior, store.semesterRows[scopeKey("year-1", "sem-1")])
}

func TestComputeSemesterResultsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.semesterResults[scopeKey("year-1", "sem-1")] = []*models.ExamResult{
		result("s1", 80),
		result("s2", 80),
		result("s3", 60),
	}

	first, err := ComputeSemesterResults(store, store, "year-1", "sem-1")
	require.NoError(t, err)

	second, err := ComputeSemesterResults(store, store, "year-1", "sem-1")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, *first[i], *second[i])
	}
}

func TestComputeYearlyResults(t *testing.T) {
	store := newFakeStore()
	// s1 has results in both semesters, s2 only in the first. The yearly
	// roll-up works from raw results, so s2's average reflects exactly the
	// entries they have.
	store.yearResults["year-1"] = []*models.ExamResult{
		{StudentID: "s1", ExamID: "sem1-exam", SubjectID: "math", Marks: 70},
		{StudentID: "s1", ExamID: "sem2-exam", SubjectID: "math", Marks: 80},
		{StudentID: "s2", ExamID: "sem1-exam", SubjectID: "math", Marks: 90},
	}

	rows, err := ComputeYearlyResults(store, store, "year-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, rows, store.yearlyRows["year-1"])

	assert.Equal(t, "s2", rows[0].StudentID)
	assert.Equal(t, 90.0, rows[0].AverageScore)
	assert.Equal(t, 1, rows[0].Rank)

	assert.Equal(t, "s1", rows[1].StudentID)
	assert.Equal(t, 150.0, rows[1].TotalMarks)
	assert.Equal(t, 75.0, rows[1].AverageScore)
	assert.Equal(t, 2, rows[1].Rank)
}

func TestComputeYearlyResultsEmptyScope(t *testing.T) {
	store := newFakeStore()

	rows, err := ComputeYearlyResults(store, store, "year-without-results")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, store.replaceCalls)
}

func TestComputeYearlyResultsPersistenceFailure(t *testing.T) {
	store := newFakeStore()
	store.yearResults["year-1"] = []*models.ExamResult{result("s1", 50)}
	prior := []*models.YearlyResult{{StudentID: "prior", Rank: 1}}
	store.yearlyRows["year-1"] = prior
	store.replaceErr = errors.New("storage unavailable")

	rows, err := ComputeYearlyResults(store, store, "year-1")
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Equal(t, prior, store.yearlyRows["year-1"])
}
