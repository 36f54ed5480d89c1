package services

import (
	"testing"

	"gigtax/models"
	"gigtax/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMusicianRetrieve(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMusicianService(repositories.NewMusicianRepository(db))
	steve, _ := registerMusician(t, db, "steve")
	jenna, _ := registerMusician(t, db, "jenna")

	t.Run("Self lookup", func(t *testing.T) {
		musician, err := svc.Retrieve(steve, steve.MusicianID)
		require.NoError(t, err)
		assert.Equal(t, "steve", musician.User.Username)
		assert.Equal(t, "100 Main St", musician.Address)
	})

	t.Run("Foreign lookup reads as not found", func(t *testing.T) {
		_, err := svc.Retrieve(steve, jenna.MusicianID)
		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestMusicianList(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMusicianService(repositories.NewMusicianRepository(db))
	registerMusician(t, db, "steve")
	registerMusician(t, db, "jenna")

	t.Run("Unfiltered returns everyone", func(t *testing.T) {
		musicians, err := svc.List("")
		require.NoError(t, err)
		assert.Len(t, musicians, 2)
	})

	t.Run("Email filter is exact match", func(t *testing.T) {
		musicians, err := svc.List("jenna@example.com")
		require.NoError(t, err)
		require.Len(t, musicians, 1)
		assert.Equal(t, "jenna", musicians[0].User.Username)

		musicians, err = svc.List("jenna")
		require.NoError(t, err)
		assert.Empty(t, musicians)
	})
}

func TestMusicianCascadeDelete(t *testing.T) {
	db := setupTestDB(t)
	musicianSvc := NewMusicianService(repositories.NewMusicianRepository(db))
	gigSvc := NewGigService(repositories.NewGigRepository(db))
	receiptSvc := NewReceiptService(repositories.NewReceiptRepository(db), repositories.NewCategoryRepository(db))

	identity, token := registerMusician(t, db, "steve")
	_, err := gigSvc.Create(identity, validGigInput())
	require.NoError(t, err)
	_, err = receiptSvc.Create(identity, validReceiptInput(nil))
	require.NoError(t, err)

	require.NoError(t, musicianSvc.Delete(identity.MusicianID))

	var gigCount, receiptCount, tokenCount int64
	db.Model(&models.Gig{}).Where("musician_id = ?", identity.MusicianID).Count(&gigCount)
	db.Model(&models.Receipt{}).Where("musician_id = ?", identity.MusicianID).Count(&receiptCount)
	db.Model(&models.AuthToken{}).Where("`key` = ?", token).Count(&tokenCount)
	assert.Zero(t, gigCount)
	assert.Zero(t, receiptCount)
	assert.Zero(t, tokenCount)

	var notFound *NotFoundError
	err = musicianSvc.Delete(identity.MusicianID)
	assert.ErrorAs(t, err, &notFound)
}
