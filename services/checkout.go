package services

import (
	"errors"

	"github.com/Makena/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCartNotFound    = errors.New("no cart with given id was found")
	ErrEmptyCart       = errors.New("the cart is empty")
	ErrProductConflict = errors.New("a product in the cart no longer exists")
)

// CheckoutService converts carts into orders. This is the only operation in
// the system that needs a transaction: the order, its items and the cart
// deletion must land together or not at all.
type CheckoutService struct {
	DB        *gorm.DB
	Listeners []OrderListener
}

func NewCheckoutService(db *gorm.DB, listeners ...OrderListener) *CheckoutService {
	return &CheckoutService{DB: db, Listeners: listeners}
}

// Checkout creates an order for the given user from the cart's items, priced
// at each product's current unit price, then deletes the cart. Two checkouts
// racing on the same cart cannot both succeed: the loser either fails the
// precondition or deletes zero cart rows and rolls back.
func (s *CheckoutService) Checkout(cartID string, userID uint) (*models.Order, error) {
	var cart models.Cart
	if err := s.DB.First(&cart, "id = ?", cartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var itemCount int64
	if err := s.DB.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&itemCount).Error; err != nil {
		return nil, err
	}
	if itemCount == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where(models.Customer{UserID: userID}).FirstOrCreate(&customer).Error; err != nil {
			return err
		}

		order = models.Order{CustomerID: customer.ID, PaymentStatus: models.PaymentStatusPending}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var cartItems []models.CartItem
		if err := tx.Where("cart_id = ?", cartID).Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			// Emptied between the precondition check and this transaction.
			return ErrEmptyCart
		}

		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			var product models.Product
			if err := withRowLock(tx).First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductConflict
				}
				return err
			}
			orderItems = append(orderItems, models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.UnitPrice,
			})
		}

		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Cart{}, "id = ?", cartID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// A concurrent checkout deleted the cart first.
			return ErrCartNotFound
		}

		order.Items = orderItems
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatchOrderCreated(s.Listeners, &order)
	return &order, nil
}

// withRowLock adds SELECT ... FOR UPDATE where the engine supports it.
// SQLite serializes writers with a database-level lock instead.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
