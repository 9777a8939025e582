package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rifnaz/WLL-Product-App/cart"
	"github.com/Rifnaz/WLL-Product-App/models"
)

type AddToCartInput struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// AddToCart merges a quantity into the cart line for a product, creating the
// line on first add. Responds "Added." or "Updated." to match the original
// contract.
// POST /api/Home/AddToCart
func AddToCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Cart Item."})
			return
		}

		created, err := store.Add(input.ProductID, input.Quantity)
		switch {
		case errors.Is(err, cart.ErrInvalidProductID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product Id."})
		case errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least 1 quantity should be added."})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		case created:
			c.JSON(http.StatusOK, "Added.")
		default:
			c.JSON(http.StatusOK, "Updated.")
		}
	}
}

// DeleteFromCart removes a cart line by its id.
// DELETE /api/Home/DeleteFromCart/:id
func DeleteFromCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Cart Item Id."})
			return
		}

		switch err := store.Remove(id); {
		case errors.Is(err, cart.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Cart Item Id."})
		case errors.Is(err, cart.ErrLineNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item Not Found."})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		default:
			c.JSON(http.StatusOK, "Removed.")
		}
	}
}

// GetCart returns the cart joined with live product data.
// GET /api/Home/Cart
func GetCart(agg *cart.Aggregator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := agg.CartView(c.Request.Context())
		if err != nil {
			log.Warn("cart view failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Something went wrong."})
			return
		}
		if view == nil {
			view = []models.EnrichedCartLine{}
		}

		c.JSON(http.StatusOK, view)
	}
}
