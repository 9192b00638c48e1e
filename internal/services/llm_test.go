package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
	"github.com/sbilibin2017/gw-company-portal/internal/repositories"
	"github.com/sbilibin2017/gw-company-portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompanies := services.NewMockCompanyChecker(ctrl)
	mockStore := services.NewMockLLMStore(ctrl)

	svc := services.NewLLMService(mockCompanies, mockStore)
	ctx := context.Background()
	req := models.LLMRequest{Name: "gpt", Specialization: "chat"}

	t.Run("create for missing company", func(t *testing.T) {
		mockCompanies.EXPECT().ExistsByID(gomock.Any(), int64(9)).Return(false, nil)

		_, err := svc.Create(ctx, 9, req)
		assert.ErrorIs(t, err, services.ErrCompanyNotFound)
	})

	t.Run("create", func(t *testing.T) {
		mockCompanies.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
		mockStore.EXPECT().Create(gomock.Any(), &models.LLM{Name: "gpt", Specialization: "chat", CompanyID: 1}).
			Return(&models.LLM{ID: 3, Name: "gpt", Specialization: "chat", CompanyID: 1}, nil)

		llm, err := svc.Create(ctx, 1, req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), llm.ID)
	})

	t.Run("company deleted between check and insert", func(t *testing.T) {
		mockCompanies.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
		mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrForeignKey)

		_, err := svc.Create(ctx, 1, req)
		assert.ErrorIs(t, err, services.ErrCompanyNotFound)
	})

	t.Run("get from another company", func(t *testing.T) {
		mockStore.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.LLM{ID: 3, CompanyID: 2}, nil)

		llm, err := svc.Get(ctx, 1, 3)
		require.NoError(t, err)
		assert.Nil(t, llm)
	})

	t.Run("update missing", func(t *testing.T) {
		mockStore.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repositories.ErrNotFound)

		err := svc.Update(ctx, 1, models.LLMRequest{ID: 44, Name: "x", Specialization: "y"})
		assert.ErrorIs(t, err, services.ErrLLMNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		mockCompanies.EXPECT().ExistsByID(gomock.Any(), int64(1)).Return(true, nil)
		mockStore.EXPECT().GetByCompanyID(gomock.Any(), int64(1)).Return([]models.LLM{{ID: 3}}, nil)
		mockStore.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(nil)

		llms, err := svc.ListByCompany(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, llms, 1)
		assert.NoError(t, svc.Delete(ctx, 1, 3))
	})
}
