package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
	"mission-report-srv/internal/savedreport/repository"
	"mission-report-srv/pkg/log"
	"mission-report-srv/pkg/paginator"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, opts repository.CreateOptions) (model.SavedReport, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.SavedReport), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (model.SavedReport, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.SavedReport), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.SavedReport, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]model.SavedReport), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context, opts repository.ListOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, opts repository.UpdateOptions) (model.SavedReport, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.SavedReport), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newTestUseCase(repo *mockRepo) *implUseCase {
	return &implUseCase{
		l:     log.NewNop(),
		repo:  repo,
		newID: func() string { return "id-1" },
	}
}

var owner = model.Scope{UserID: "u1", Role: "USER"}

func TestCreate(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)
	params := model.DefaultParameters()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(o repository.CreateOptions) bool {
		return o.ID == "id-1" && o.Name == "Overnight" && o.UserID == "u1" && o.Report == model.ReportName
	})).Return(model.SavedReport{ID: "id-1", Name: "Overnight", UserID: "u1"}, nil)

	got, err := uc.Create(context.Background(), owner, savedreport.CreateInput{Name: "  Overnight ", Params: params})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUseCase(&mockRepo{})
	ctx := context.Background()

	_, err := uc.Create(ctx, owner, savedreport.CreateInput{Params: model.DefaultParameters()})
	assert.ErrorIs(t, err, savedreport.ErrNameRequired)

	bad := model.DefaultParameters()
	bad.Dates.Filter = "tomorrow"
	_, err = uc.Create(ctx, owner, savedreport.CreateInput{Name: "x", Params: bad})
	assert.ErrorIs(t, err, savedreport.ErrInvalidParameters)

	_, err = uc.Create(ctx, owner, savedreport.CreateInput{Name: "x", Params: model.DefaultParameters(), IsGlobal: true})
	assert.ErrorIs(t, err, savedreport.ErrGlobalNotAllowed)
}

func TestDetail_HidesOtherUsersReports(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	repo.On("GetByID", mock.Anything, "private").Return(model.SavedReport{ID: "private", UserID: "u2"}, nil)
	repo.On("GetByID", mock.Anything, "shared").Return(model.SavedReport{ID: "shared", UserID: "u2", IsGlobal: true}, nil)
	repo.On("GetByID", mock.Anything, "gone").Return(model.SavedReport{}, repository.ErrNotFound)

	_, err := uc.Detail(context.Background(), owner, "private")
	assert.ErrorIs(t, err, savedreport.ErrNotFound)

	got, err := uc.Detail(context.Background(), owner, "shared")
	require.NoError(t, err)
	assert.Equal(t, "shared", got.ID)

	_, err = uc.Detail(context.Background(), owner, "gone")
	assert.ErrorIs(t, err, savedreport.ErrNotFound)
}

func TestDelete_Forbidden(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	repo.On("GetByID", mock.Anything, "shared").Return(model.SavedReport{ID: "shared", UserID: "u2", IsGlobal: true}, nil)

	err := uc.Delete(context.Background(), owner, "shared")
	assert.ErrorIs(t, err, savedreport.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, "shared")

	repo.On("Delete", mock.Anything, "shared").Return(nil)
	admin := model.Scope{UserID: "u3", Role: savedreport.RoleAdmin}
	assert.NoError(t, uc.Delete(context.Background(), admin, "shared"))
}

func TestList_Paginates(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	opts := repository.ListOptions{
		Report:        model.ReportName,
		UserID:        "u1",
		IncludeGlobal: true,
		Limit:         paginator.MaxLimit,
		Offset:        paginator.MaxLimit,
	}
	repo.On("List", mock.Anything, opts).Return([]model.SavedReport{{ID: "a"}}, nil)
	repo.On("Count", mock.Anything, opts).Return(int64(101), nil)

	got, err := uc.List(context.Background(), owner, savedreport.ListInput{
		IncludeGlobal: true,
		Paginate:      paginator.PaginateQuery{Page: 2, Limit: 1000},
	})
	require.NoError(t, err)
	assert.Len(t, got.Reports, 1)
	assert.Equal(t, int64(101), got.Paginator.Total)
	assert.Equal(t, 2, got.Paginator.CurrentPage)
	assert.False(t, got.Paginator.HasNextPage())
}

func TestList_CountFails(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(repo)

	repo.On("List", mock.Anything, mock.Anything).Return([]model.SavedReport{}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	_, err := uc.List(context.Background(), owner, savedreport.ListInput{})
	assert.ErrorIs(t, err, assert.AnError)
}
