package services

import (
	"testing"

	"gigtax/models"
	"gigtax/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReceiptService(db *gorm.DB) ReceiptService {
	return NewReceiptService(repositories.NewReceiptRepository(db), repositories.NewCategoryRepository(db))
}

func validReceiptInput(categoryID *uint) *ReceiptInput {
	return &ReceiptInput{
		BusinessName:    "Guitar Center",
		BusinessAddress: "Nashville, TN",
		Description:     "New strings",
		Date:            "2021-07-08",
		Price:           fptr(24.99),
		ReceiptNumber:   iptr(10045),
		Category:        categoryID,
	}
}

func seededCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	var category models.Category
	require.NoError(t, db.Where("label = ?", "Equipment").First(&category).Error)
	return &category
}

func TestReceiptRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := newReceiptService(db)
	identity, _ := registerMusician(t, db, "steve")
	category := seededCategory(t, db)

	created, err := svc.Create(identity, validReceiptInput(uptr(category.ID)))
	require.NoError(t, err)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Equipment", created.Category.Label)

	fetched, err := svc.Retrieve(identity, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guitar Center", fetched.BusinessName)
	assert.Equal(t, 24.99, fetched.Price)
	assert.Equal(t, 10045, fetched.ReceiptNumber)
}

func TestReceiptWithoutCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newReceiptService(db)
	identity, _ := registerMusician(t, db, "steve")

	created, err := svc.Create(identity, validReceiptInput(nil))
	require.NoError(t, err)
	assert.Nil(t, created.Category)
}

func TestReceiptDanglingCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newReceiptService(db)
	identity, _ := registerMusician(t, db, "steve")

	_, err := svc.Create(identity, validReceiptInput(uptr(9999)))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"category"}, validation.Fields)
}

func TestReceiptOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := newReceiptService(db)
	owner, _ := registerMusician(t, db, "owner")
	other, _ := registerMusician(t, db, "other")

	created, err := svc.Create(owner, validReceiptInput(nil))
	require.NoError(t, err)

	var notFound *NotFoundError
	_, err = svc.Retrieve(other, created.ID)
	assert.ErrorAs(t, err, &notFound)
}
