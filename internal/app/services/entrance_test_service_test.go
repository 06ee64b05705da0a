package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
)

// fakeEntranceTestStore is an in-memory EntranceTestStore keyed by ID.
type fakeEntranceTestStore struct {
	nextID  int64
	tests   map[int64]*models.EntranceTest
	updates int
}

func newFakeEntranceTestStore(tests ...*models.EntranceTest) *fakeEntranceTestStore {
	f := &fakeEntranceTestStore{nextID: 1, tests: make(map[int64]*models.EntranceTest)}
	for _, t := range tests {
		f.tests[t.ID] = t
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
	}
	return f
}

func (f *fakeEntranceTestStore) Create(_ context.Context, t *models.EntranceTest) error {
	t.ID = f.nextID
	f.nextID++
	f.tests[t.ID] = t
	return nil
}

func (f *fakeEntranceTestStore) GetByID(_ context.Context, id int64) (*models.EntranceTest, error) {
	t, ok := f.tests[id]
	if !ok {
		return nil, apperrors.ErrEntranceTestNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeEntranceTestStore) List(_ context.Context) ([]*models.EntranceTest, error) {
	out := make([]*models.EntranceTest, 0, len(f.tests))
	for _, t := range f.tests {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeEntranceTestStore) ListUpcoming(_ context.Context, from string) ([]*models.EntranceTest, error) {
	var out []*models.EntranceTest
	for _, t := range f.tests {
		if t.Status == models.EntranceTestScheduled && t.TestDate >= from {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeEntranceTestStore) Update(_ context.Context, t *models.EntranceTest) error {
	if _, ok := f.tests[t.ID]; !ok {
		return apperrors.ErrEntranceTestNotFound
	}
	copied := *t
	f.tests[t.ID] = &copied
	f.updates++
	return nil
}

func (f *fakeEntranceTestStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.tests[id]; !ok {
		return apperrors.ErrEntranceTestNotFound
	}
	delete(f.tests, id)
	return nil
}

func scheduledTestFixture() *models.EntranceTest {
	return &models.EntranceTest{
		ID:          1,
		Name:        "김철수",
		School:      strPtr("수학중학교"),
		Grade:       strPtr("중2"),
		ParentPhone: "01098765432",
		TestDate:    "2026-09-05",
		TestTime:    "14:00",
		Status:      models.EntranceTestScheduled,
	}
}

func TestEntranceTestCreateNormalizesParentPhone(t *testing.T) {
	store := newFakeEntranceTestStore()
	svc := NewEntranceTestService(store)

	created, err := svc.Create(context.Background(), &dto.CreateEntranceTestRequest{
		Name:        "김철수",
		ParentPhone: "010-9876-5432",
		TestDate:    "2026-09-05",
		TestTime:    "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "01098765432", created.ParentPhone)
	assert.Equal(t, models.EntranceTestScheduled, created.Status)
}

func TestEntranceTestUpdateEditsApplicantFields(t *testing.T) {
	store := newFakeEntranceTestStore(scheduledTestFixture())
	svc := NewEntranceTestService(store)

	updated, err := svc.Update(context.Background(), 1, &dto.UpdateEntranceTestRequest{
		Name:        strPtr("김영희"),
		School:      strPtr("탐구중학교"),
		Grade:       strPtr("중3"),
		ParentPhone: strPtr("010-1111-2222"),
	})
	require.NoError(t, err)
	assert.Equal(t, "김영희", updated.Name)
	assert.Equal(t, "탐구중학교", *updated.School)
	assert.Equal(t, "중3", *updated.Grade)
	assert.Equal(t, "01011112222", updated.ParentPhone)
	// Untouched fields keep their value.
	assert.Equal(t, "2026-09-05", updated.TestDate)
	assert.Equal(t, models.EntranceTestScheduled, updated.Status)
	assert.Equal(t, 1, store.updates)

	stored, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "김영희", stored.Name)
	assert.Equal(t, "01011112222", stored.ParentPhone)
}

func TestEntranceTestUpdateRecordsOutcome(t *testing.T) {
	store := newFakeEntranceTestStore(scheduledTestFixture())
	svc := NewEntranceTestService(store)

	updated, err := svc.Update(context.Background(), 1, &dto.UpdateEntranceTestRequest{
		Status:          strPtr(string(models.EntranceTestCompleted)),
		TestScore:       strPtr("82"),
		CounselingNotes: strPtr("레벨 B 반 추천"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntranceTestCompleted, updated.Status)
	assert.Equal(t, "82", *updated.TestScore)
	// Applicant fields are untouched when omitted.
	assert.Equal(t, "김철수", updated.Name)
	assert.Equal(t, "01098765432", updated.ParentPhone)
}

func TestEntranceTestUpdateRejectsUnknownStatus(t *testing.T) {
	store := newFakeEntranceTestStore(scheduledTestFixture())
	svc := NewEntranceTestService(store)

	_, err := svc.Update(context.Background(), 1, &dto.UpdateEntranceTestRequest{
		Status: strPtr("POSTPONED"),
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Zero(t, store.updates)
}
