package services

import (
	"context"
	"testing"

	"stocktrack/internal/models"
	"stocktrack/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BrandServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBrandRepository
	service  BrandService
}

func (suite *BrandServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockBrandRepository{}
	suite.service = NewBrandService(suite.mockRepo)

	suite.mockRepo.Test(suite.T())
}

func (suite *BrandServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBrandServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BrandServiceTestSuite))
}

func (suite *BrandServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Brand")).Return(nil).Run(func(args mock.Arguments) {
		brand := args.Get(1).(*models.Brand)
		assert.Equal(suite.T(), "Nestlé", brand.Name)
		brand.ID = 1
	})

	brand, err := suite.service.Create(ctx, CreateBrandRequest{Name: "Nestlé"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), brand.ID)
	assert.Equal(suite.T(), "Nestlé", brand.Name)
}

func (suite *BrandServiceTestSuite) TestCreate_DuplicateName() {
	ctx := context.Background()
	constraint := &repositories.ConstraintError{Code: "23505", Message: "duplicate key value"}

	suite.mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Brand")).Return(constraint)

	brand, err := suite.service.Create(ctx, CreateBrandRequest{Name: "Nestlé"})
	assert.Nil(suite.T(), brand)
	var got *repositories.ConstraintError
	assert.ErrorAs(suite.T(), err, &got)
}

func (suite *BrandServiceTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("GetByID", ctx, int64(42)).Return(nil, repositories.ErrNotFound)

	brand, err := suite.service.Get(ctx, 42)
	assert.Nil(suite.T(), brand)
	var notFound *NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "Brand id 42 doesn't exists", err.Error())
}

func (suite *BrandServiceTestSuite) TestDelete_ReturnsSnapshot() {
	ctx := context.Background()
	stored := &models.Brand{ID: 1, Name: "Crystal"}

	suite.mockRepo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	suite.mockRepo.On("Delete", ctx, int64(1)).Return(nil)

	brand, err := suite.service.Delete(ctx, 1)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, brand)
}

func (suite *BrandServiceTestSuite) TestDelete_StillReferenced() {
	ctx := context.Background()
	stored := &models.Brand{ID: 1, Name: "Crystal"}
	constraint := &repositories.ConstraintError{Code: "23503", Message: "violates foreign key constraint"}

	suite.mockRepo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	suite.mockRepo.On("Delete", ctx, int64(1)).Return(constraint)

	brand, err := suite.service.Delete(ctx, 1)
	assert.Nil(suite.T(), brand)
	var got *repositories.ConstraintError
	assert.ErrorAs(suite.T(), err, &got)
}

func (suite *BrandServiceTestSuite) TestPatch_AppliesName() {
	ctx := context.Background()
	stored := &models.Brand{ID: 1, Name: "Crystal"}

	suite.mockRepo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	suite.mockRepo.On("Update", ctx, mock.AnythingOfType("*models.Brand")).Return(nil).Run(func(args mock.Arguments) {
		brand := args.Get(1).(*models.Brand)
		assert.Equal(suite.T(), "Crystal Clear", brand.Name)
	})

	err := suite.service.Patch(ctx, 1, PatchBrandRequest{Name: stringPtr("Crystal Clear")})
	assert.NoError(suite.T(), err)
}

func (suite *BrandServiceTestSuite) TestPatch_EmptyNameSkipped() {
	ctx := context.Background()
	stored := &models.Brand{ID: 1, Name: "Crystal"}

	suite.mockRepo.On("GetByID", ctx, int64(1)).Return(stored, nil)
	suite.mockRepo.On("Update", ctx, mock.AnythingOfType("*models.Brand")).Return(nil).Run(func(args mock.Arguments) {
		brand := args.Get(1).(*models.Brand)
		assert.Equal(suite.T(), "Crystal", brand.Name)
	})

	err := suite.service.Patch(ctx, 1, PatchBrandRequest{Name: stringPtr("")})
	assert.NoError(suite.T(), err)
}

func (suite *BrandServiceTestSuite) TestPatch_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("GetByID", ctx, int64(42)).Return(nil, repositories.ErrNotFound)

	err := suite.service.Patch(ctx, 42, PatchBrandRequest{Name: stringPtr("Ghost")})
	var notFound *NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}
