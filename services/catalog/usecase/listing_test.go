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
	"github.com/kormo-app/kormo/services/catalog/mocks"
)

func TestListApproved_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	cache := mocks.NewMockListingCache(ctrl)
	uc := NewCatalogUC(repo, cache)

	filter := models.ListingFilter{Category: "plumbing"}
	cached := []models.ServiceListing{{Title: "Pipe repair"}}

	cache.EXPECT().GetApproved(gomock.Any(), filter).Return(cached, nil)

	got, err := uc.ListApproved(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestListApproved_CacheMissFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	cache := mocks.NewMockListingCache(ctrl)
	uc := NewCatalogUC(repo, cache)

	filter := models.ListingFilter{Title: "clean"}
	stored := []models.ServiceListing{{Title: "Home cleaning"}}

	cache.EXPECT().GetApproved(gomock.Any(), filter).Return(nil, nil)
	repo.EXPECT().FindApproved(gomock.Any(), filter).Return(stored, nil)
	cache.EXPECT().SetApproved(gomock.Any(), filter, stored).Return(nil)

	got, err := uc.ListApproved(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestListApproved_CacheFailureDoesNotFailRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	cache := mocks.NewMockListingCache(ctrl)
	uc := NewCatalogUC(repo, cache)

	filter := models.ListingFilter{}
	stored := []models.ServiceListing{{Title: "Tutoring"}}

	cache.EXPECT().GetApproved(gomock.Any(), filter).Return(nil, errors.New("redis down"))
	repo.EXPECT().FindApproved(gomock.Any(), filter).Return(stored, nil)
	cache.EXPECT().SetApproved(gomock.Any(), filter, stored).Return(errors.New("redis down"))

	got, err := uc.ListApproved(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetApprovedByID_HidesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	uc := NewCatalogUC(repo, nil)

	oid := primitive.NewObjectID()
	repo.EXPECT().
		FindByID(gomock.Any(), oid).
		Return(&models.ServiceListing{ID: oid, Status: models.ListingStatusPending}, nil)

	got, err := uc.GetApprovedByID(context.Background(), oid.Hex())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateListing_ForcesPendingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	cache := mocks.NewMockListingCache(ctrl)
	uc := NewCatalogUC(repo, cache)

	listing := &models.ServiceListing{
		Title:     "AC servicing",
		UserEmail: "provider@example.com",
		Price:     500,
		Status:    models.ListingStatusApproved, // client-supplied status is ignored
		SoldCount: 99,
	}

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *models.ServiceListing) error {
			assert.Equal(t, models.ListingStatusPending, l.Status)
			assert.Equal(t, int64(0), l.SoldCount)
			assert.False(t, l.CreatedAt.IsZero())
			return nil
		})
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	err := uc.CreateListing(context.Background(), listing)
	assert.NoError(t, err)
}

func TestCreateListing_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewCatalogUC(mocks.NewMockListingRepo(ctrl), nil)

	err := uc.CreateListing(context.Background(), &models.ServiceListing{Title: "No owner"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestModerateListing(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name       string
		action     string
		wantStatus string
		matched    int64
		wantErr    error
	}{
		{name: "approve", action: "approve", wantStatus: models.ListingStatusApproved, matched: 1},
		{name: "reject", action: "reject", wantStatus: models.ListingStatusRejected, matched: 1},
		{name: "unknown action", action: "publish", wantErr: apperrors.ErrValidation},
		{name: "missing listing", action: "approve", wantStatus: models.ListingStatusApproved, matched: 0, wantErr: apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockListingRepo(ctrl)
			cache := mocks.NewMockListingCache(ctrl)
			uc := NewCatalogUC(repo, cache)

			if tt.wantStatus != "" {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), oid, tt.wantStatus).
					Return(tt.matched, nil)
			}
			if tt.wantErr == nil {
				cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			}

			err := uc.ModerateListing(context.Background(), oid.Hex(), tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteListing_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	uc := NewCatalogUC(repo, nil)

	oid := primitive.NewObjectID()
	repo.EXPECT().Delete(gomock.Any(), oid).Return(int64(0), nil)

	err := uc.DeleteListing(context.Background(), oid.Hex())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateListing_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockListingRepo(ctrl)
	cache := mocks.NewMockListingCache(ctrl)
	uc := NewCatalogUC(repo, cache)

	oid := primitive.NewObjectID()
	fields := map[string]interface{}{"price": 750.0}

	repo.EXPECT().UpdateFields(gomock.Any(), oid, fields).Return(int64(1), nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

	err := uc.UpdateListing(context.Background(), oid.Hex(), fields)
	assert.NoError(t, err)
}
