package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kormo-app/kormo/internal/pkg/apperrors"
	"github.com/kormo-app/kormo/internal/pkg/models"
	"github.com/kormo-app/kormo/services/users/mocks"
)

func TestRecentUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(repo)

	expected := []models.UserProfile{{Username: "rahim"}, {Username: "karim"}}
	repo.EXPECT().
		RecentProfiles(gomock.Any(), int64(3)).
		Return(expected, nil)

	got, err := uc.RecentUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestSearchUsersByEmail_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(repo)

	got, err := uc.SearchUsersByEmail(context.Background(), "")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearchUsersByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(repo)

	expected := []models.UserProfile{{Email: "rahim@example.com"}}
	repo.EXPECT().
		SearchProfilesByEmail(gomock.Any(), "rahim", int64(10)).
		Return(expected, nil)

	got, err := uc.SearchUsersByEmail(context.Background(), "rahim")
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestUpdateUserRole(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name    string
		id      string
		role    string
		setup   func(repo *mocks.MockUserRepo)
		wantErr error
	}{
		{
			name:    "empty role rejected",
			id:      oid.Hex(),
			role:    "",
			setup:   func(repo *mocks.MockUserRepo) {},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "malformed id rejected",
			id:      "not-a-hex-id",
			role:    "admin",
			setup:   func(repo *mocks.MockUserRepo) {},
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "no matched document",
			id:   oid.Hex(),
			role: "admin",
			setup: func(repo *mocks.MockUserRepo) {
				repo.EXPECT().
					UpdateProfileRole(gomock.Any(), oid, "admin").
					Return(int64(0), nil)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "success",
			id:   oid.Hex(),
			role: "provider",
			setup: func(repo *mocks.MockUserRepo) {
				repo.EXPECT().
					UpdateProfileRole(gomock.Any(), oid, "provider").
					Return(int64(1), nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUserRepo(ctrl)
			tt.setup(repo)

			err := NewUserUC(repo).UpdateUserRole(context.Background(), tt.id, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserRole_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUserRepo(ctrl)
	oid := primitive.NewObjectID()

	repoErr := errors.New("connection reset")
	repo.EXPECT().
		UpdateProfileRole(gomock.Any(), oid, "admin").
		Return(int64(0), repoErr)

	err := NewUserUC(repo).UpdateUserRole(context.Background(), oid.Hex(), "admin")
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
