package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rifnaz/WLL-Product-App/catalog"
	"github.com/Rifnaz/WLL-Product-App/models"
)

// GetProducts lists catalog products, optionally filtered.
// Query params: searchKey (title substring), category (upstream category).
// GET /api/Home/products
func GetProducts(querier *catalog.Querier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		searchKey := c.Query("searchKey")
		category := c.Query("category")

		products, err := querier.QueryProducts(c.Request.Context(), searchKey, category)
		if err != nil {
			// Compatibility: the products endpoint has always answered an
			// empty list when the catalog is unreachable. The log line is
			// what separates that from a genuinely empty result.
			log.Warn("product query failed, answering empty list",
				zap.String("searchKey", searchKey),
				zap.String("category", category),
				zap.Error(err))
			c.JSON(http.StatusOK, []models.Product{})
			return
		}
		if products == nil {
			products = []models.Product{}
		}

		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product from the upstream catalog.
// URL param: /api/Home/products/:id
func GetProductByID(client *catalog.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := client.FetchByID(c.Request.Context(), id)
		if err != nil {
			// Long-standing quirk kept for compatibility: a failed upstream
			// lookup still answers 200 with a default product.
			log.Warn("product lookup failed, answering default object",
				zap.Int("id", id), zap.Error(err))
			c.JSON(http.StatusOK, models.Product{})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GetCategories proxies the upstream category name list.
// GET /api/Home/Categories
func GetCategories(client *catalog.Client, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := client.FetchCategories(c.Request.Context())
		if err != nil {
			log.Warn("category fetch failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to fetch the category."})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}
