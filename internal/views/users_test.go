package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/addisfleet/transport-admin/internal/api"
	"github.com/addisfleet/transport-admin/internal/models"
)

// MockUserSource is a mock implementation of UserSource
type MockUserSource struct {
	mock.Mock
}

func (m *MockUserSource) ListUsers(ctx context.Context, page int) (api.UserPage, error) {
	args := m.Called(ctx, page)
	return args.Get(0).(api.UserPage), args.Error(1)
}

func TestUserList_Reload(t *testing.T) {
	src := new(MockUserSource)
	list := NewUserList(src)

	page := api.UserPage{
		Count: 12,
		Results: []models.Account{
			{ID: 1, FullName: "A", IsActive: false},
			{ID: 2, FullName: "B", IsActive: true},
		},
	}
	src.On("ListUsers", mock.Anything, 1).Return(page, nil)

	require.NoError(t, list.Reload(context.Background()))
	assert.True(t, list.Loaded())
	assert.Equal(t, 12, list.Count())
	assert.Equal(t, page.Results, list.Users())
}

func TestUserList_ReloadFailureKeepsPriorState(t *testing.T) {
	src := new(MockUserSource)
	list := NewUserList(src)

	good := api.UserPage{Count: 1, Results: []models.Account{{ID: 1, FullName: "A"}}}
	src.On("ListUsers", mock.Anything, 1).Return(good, nil).Once()
	src.On("ListUsers", mock.Anything, 1).Return(api.UserPage{}, errors.New("boom")).Once()

	require.NoError(t, list.Reload(context.Background()))
	err := list.Reload(context.Background())

	assert.Error(t, err)
	assert.Equal(t, good.Results, list.Users(), "failed reload must not clobber rows")
}

func TestUserList_SetPage(t *testing.T) {
	src := new(MockUserSource)
	list := NewUserList(src)

	src.On("ListUsers", mock.Anything, 1).Return(api.UserPage{Results: []models.Account{}}, nil)
	src.On("ListUsers", mock.Anything, 2).Return(api.UserPage{Results: []models.Account{{ID: 9}}}, nil)

	require.NoError(t, list.Reload(context.Background()))

	list.SetPage(2)
	assert.False(t, list.Loaded(), "page change marks the collection stale")
	require.NoError(t, list.Reload(context.Background()))
	assert.Equal(t, 2, list.Page())
	assert.Len(t, list.Users(), 1)

	list.SetPage(0)
	assert.Equal(t, 1, list.Page())
}

func TestUserList_Actions(t *testing.T) {
	list := NewUserList(new(MockUserSource))

	pending := models.Account{ID: 1, IsActive: false}
	active := models.Account{ID: 2, IsActive: true}

	assert.Equal(t, []string{ActionApprove, ActionReject}, list.Actions(pending))
	assert.Nil(t, list.Actions(active))
}
