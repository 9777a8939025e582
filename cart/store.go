package cart

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rifnaz/WLL-Product-App/models"
)

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidQuantity  = errors.New("at least 1 quantity should be added")
	ErrInvalidID        = errors.New("invalid cart line id")
	ErrLineNotFound     = errors.New("cart line not found")
)

// Store persists cart lines, one per product. Repeated adds for the same
// product accumulate into the existing line's quantity.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, locks: make(map[int]*sync.Mutex)}
}

// lockFor serializes adds per product so the lookup-then-write below cannot
// interleave for the same productID.
func (s *Store) lockFor(productID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[productID] = l
	}
	return l
}

// Add merges quantity into the product's cart line, creating the line on
// first add. Returns created=true when a new line was inserted.
func (s *Store) Add(productID, quantity int) (created bool, err error) {
	if productID <= 0 {
		return false, ErrInvalidProductID
	}
	if quantity < 1 {
		return false, ErrInvalidQuantity
	}

	l := s.lockFor(productID)
	l.Lock()
	defer l.Unlock()

	var line models.CartLine
	err = s.db.Where("product_id = ?", productID).First(&line).Error
	switch {
	case err == nil:
		err = s.db.Model(&line).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error
		return false, err

	case errors.Is(err, gorm.ErrRecordNotFound):
		line = models.CartLine{ProductID: productID, Quantity: quantity}
		// A writer in another process may have inserted the line since the
		// lookup above; the conflict clause folds that race into an increment
		// so the unique product_id index never rejects the add.
		err = s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_lines.quantity + ?", quantity),
			}),
		}).Create(&line).Error
		return err == nil, err

	default:
		return false, err
	}
}

// Remove deletes a cart line by its own id (not the product id).
func (s *Store) Remove(id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	result := s.db.Delete(&models.CartLine{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// ListAll returns every cart line in insertion order.
func (s *Store) ListAll() ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.db.Order("id").Find(&lines).Error
	return lines, err
}
