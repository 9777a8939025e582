package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rifnaz/WLL-Product-App/models"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A fresh pooled connection would see its own empty :memory: database,
	// so pin the pool to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.CartLine{}))
	return db
}

func TestStoreAddMergesQuantities(t *testing.T) {
	store := NewStore(setupStoreTestDB(t))

	created, err := store.Add(7, 2)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.Add(7, 3)
	require.NoError(t, err)
	assert.False(t, created)

	lines, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestStoreAddValidation(t *testing.T) {
	store := NewStore(setupStoreTestDB(t))

	t.Run("rejects non-positive product id", func(t *testing.T) {
		_, err := store.Add(0, 1)
		assert.ErrorIs(t, err, ErrInvalidProductID)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := store.Add(5, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	lines, err := store.ListAll()
	require.NoError(t, err)
	assert.Empty(t, lines, "rejected adds must not create lines")
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(setupStoreTestDB(t))

	_, err := store.Add(3, 1)
	require.NoError(t, err)

	lines, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)

	t.Run("rejects non-positive id", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(0), ErrInvalidID)
	})

	t.Run("reports missing line", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(9999), ErrLineNotFound)

		after, err := store.ListAll()
		require.NoError(t, err)
		assert.Len(t, after, 1, "failed remove must not touch the store")
	})

	t.Run("deletes by line id", func(t *testing.T) {
		require.NoError(t, store.Remove(int(lines[0].ID)))

		after, err := store.ListAll()
		require.NoError(t, err)
		assert.Empty(t, after)
	})
}

func TestStoreConcurrentAddsForNewProduct(t *testing.T) {
	store := NewStore(setupStoreTestDB(t))

	const callers = 32
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Add(42, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	lines, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, lines, 1, "concurrent adds must not duplicate the line")
	assert.Equal(t, callers, lines[0].Quantity, "no increment may be lost")
}
