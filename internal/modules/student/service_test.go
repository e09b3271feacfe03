package student

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"school/internal/domain"
	"school/internal/pkg/apperrors"
	"school/internal/repository"
)

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, s *domain.Student) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListByAge(ctx context.Context, age int) ([]domain.Student, error) {
	args := m.Called(ctx, age)
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListByAgeBetween(ctx context.Context, minAge, maxAge int) ([]domain.Student, error) {
	args := m.Called(ctx, minAge, maxAge)
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByName(ctx context.Context, name string) (*domain.Student, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentRepository) ListByNameContaining(ctx context.Context, part string) ([]domain.Student, error) {
	args := m.Called(ctx, part)
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, s *domain.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockFacultyLookup struct {
	mock.Mock
}

func (m *MockFacultyLookup) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFacultyLookup) GetByID(ctx context.Context, id int64) (*domain.Faculty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Faculty), args.Error(1)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestService_Create_IgnoresClientID(t *testing.T) {
	students := new(MockStudentRepository)
	faculties := new(MockFacultyLookup)
	svc := NewService(students, faculties)

	faculties.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	students.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Student) bool {
		return s.ID == 0 && s.Name == "Harry"
	})).Return(nil)

	st, err := svc.Create(context.Background(), &domain.Student{ID: 55, Name: "Harry", Age: 11, FacultyID: int64Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(101), st.ID)

	students.AssertExpectations(t)
	faculties.AssertExpectations(t)
}

func TestService_Create_UnknownFaculty(t *testing.T) {
	students := new(MockStudentRepository)
	faculties := new(MockFacultyLookup)
	svc := NewService(students, faculties)

	faculties.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := svc.Create(context.Background(), &domain.Student{Name: "Neville", FacultyID: int64Ptr(9)})
	assert.ErrorIs(t, err, ErrUnknownFaculty)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	students.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(new(MockStudentRepository), new(MockFacultyLookup))

	_, err := svc.Create(context.Background(), &domain.Student{Name: "  "})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), &domain.Student{Name: "Tom", Age: -1})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestService_Update_NotFound(t *testing.T) {
	students := new(MockStudentRepository)
	svc := NewService(students, new(MockFacultyLookup))

	students.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.Update(context.Background(), &domain.Student{ID: 404, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	students.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_UnknownStudentBeforeUnknownFaculty(t *testing.T) {
	students := new(MockStudentRepository)
	faculties := new(MockFacultyLookup)
	svc := NewService(students, faculties)

	students.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	_, err := svc.Update(context.Background(), &domain.Student{ID: 404, Name: "Ghost", FacultyID: int64Ptr(9)})
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrBadRequest)
	faculties.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestService_Update_UnknownFaculty(t *testing.T) {
	students := new(MockStudentRepository)
	faculties := new(MockFacultyLookup)
	svc := NewService(students, faculties)

	students.On("GetByID", mock.Anything, int64(7)).Return(&domain.Student{ID: 7, Name: "Ginny"}, nil)
	faculties.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := svc.Update(context.Background(), &domain.Student{ID: 7, Name: "Ginny", FacultyID: int64Ptr(9)})
	assert.ErrorIs(t, err, ErrUnknownFaculty)
	students.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_KeepsID(t *testing.T) {
	students := new(MockStudentRepository)
	svc := NewService(students, new(MockFacultyLookup))

	updated := &domain.Student{ID: 7, Name: "Ginny", Age: 12}
	students.On("Update", mock.Anything, updated).Return(nil)
	students.On("GetByID", mock.Anything, int64(7)).Return(updated, nil)

	st, err := svc.Update(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, int64(7), st.ID)
}

func TestService_Delete(t *testing.T) {
	students := new(MockStudentRepository)
	svc := NewService(students, new(MockFacultyLookup))

	students.On("Delete", mock.Anything, int64(1)).Return(true, nil)
	students.On("Delete", mock.Anything, int64(2)).Return(false, nil)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrStudentNotFound)
}

func TestService_FilterByAgeRange_RequiresBothBounds(t *testing.T) {
	students := new(MockStudentRepository)
	svc := NewService(students, new(MockFacultyLookup))

	_, err := svc.FilterByAgeRange(context.Background(), intPtr(10), nil)
	assert.ErrorIs(t, err, ErrAgeRange)
	_, err = svc.FilterByAgeRange(context.Background(), nil, intPtr(10))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	students.On("ListByAgeBetween", mock.Anything, 10, 12).Return([]domain.Student{{ID: 1}}, nil)
	got, err := svc.FilterByAgeRange(context.Background(), intPtr(10), intPtr(12))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Filter_Precedence(t *testing.T) {
	ctx := context.Background()

	t.Run("age wins", func(t *testing.T) {
		students := new(MockStudentRepository)
		svc := NewService(students, new(MockFacultyLookup))
		students.On("ListByAge", mock.Anything, 17).Return([]domain.Student{{ID: 1}}, nil)

		got, err := svc.Filter(ctx, Filter{Age: intPtr(17), Name: "Harry", Part: "ar"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		students.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})

	t.Run("zero age falls through to name", func(t *testing.T) {
		students := new(MockStudentRepository)
		svc := NewService(students, new(MockFacultyLookup))
		students.On("FindByName", mock.Anything, "Harry").Return(&domain.Student{ID: 3, Name: "Harry"}, nil)

		got, err := svc.Filter(ctx, Filter{Age: intPtr(0), Name: "Harry", Part: "ar"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("unmatched name is empty", func(t *testing.T) {
		students := new(MockStudentRepository)
		svc := NewService(students, new(MockFacultyLookup))
		students.On("FindByName", mock.Anything, "Ron").Return(nil, repository.ErrNotFound)

		got, err := svc.Filter(ctx, Filter{Name: "Ron", Part: "o"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		students.AssertNotCalled(t, "ListByNameContaining", mock.Anything, mock.Anything)
	})

	t.Run("part", func(t *testing.T) {
		students := new(MockStudentRepository)
		svc := NewService(students, new(MockFacultyLookup))
		students.On("ListByNameContaining", mock.Anything, "er").Return([]domain.Student{{ID: 2}, {ID: 4}}, nil)

		got, err := svc.Filter(ctx, Filter{Name: "  ", Part: "er"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("none", func(t *testing.T) {
		students := new(MockStudentRepository)
		svc := NewService(students, new(MockFacultyLookup))
		students.On("List", mock.Anything).Return([]domain.Student{}, nil)

		got, err := svc.Filter(ctx, Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)
		students.AssertCalled(t, "List", mock.Anything)
	})
}

func TestService_FacultyOf(t *testing.T) {
	students := new(MockStudentRepository)
	faculties := new(MockFacultyLookup)
	svc := NewService(students, faculties)
	ctx := context.Background()

	students.On("GetByID", mock.Anything, int64(1)).Return(&domain.Student{ID: 1, FacultyID: int64Ptr(5)}, nil)
	students.On("GetByID", mock.Anything, int64(2)).Return(&domain.Student{ID: 2}, nil)
	students.On("GetByID", mock.Anything, int64(3)).Return(&domain.Student{ID: 3, FacultyID: int64Ptr(6)}, nil)
	students.On("GetByID", mock.Anything, int64(4)).Return(nil, repository.ErrNotFound)
	faculties.On("GetByID", mock.Anything, int64(5)).Return(&domain.Faculty{ID: 5, Name: "Gryffindor"}, nil)
	faculties.On("GetByID", mock.Anything, int64(6)).Return(nil, repository.ErrNotFound)

	f, err := svc.FacultyOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Gryffindor", f.Name)

	_, err = svc.FacultyOf(ctx, 2)
	assert.ErrorIs(t, err, ErrFacultyNotFound)

	_, err = svc.FacultyOf(ctx, 3)
	assert.ErrorIs(t, err, ErrFacultyNotFound)

	_, err = svc.FacultyOf(ctx, 4)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestService_GetByID_PassesThroughOtherErrors(t *testing.T) {
	students := new(MockStudentRepository)
	svc := NewService(students, new(MockFacultyLookup))

	boom := errors.New("connection reset")
	students.On("GetByID", mock.Anything, int64(1)).Return(nil, boom)

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}
