package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rifnaz/WLL-Product-App/cart"
	"github.com/Rifnaz/WLL-Product-App/catalog"
	cartControllers "github.com/Rifnaz/WLL-Product-App/controllers/cart"
	productControllers "github.com/Rifnaz/WLL-Product-App/controllers/product"
)

// SetupRoutes is the single entry-point that wires up the /api/Home surface.
// Paths and casing match the original API so existing clients keep working.
func SetupRoutes(r *gin.Engine, client *catalog.Client, querier *catalog.Querier, store *cart.Store, agg *cart.Aggregator, log *zap.Logger) {
	home := r.Group("/api/Home")
	{
		// ──────────────── Catalog ────────────────
		home.GET("/products", productControllers.GetProducts(querier, log))       // GET /api/Home/products?searchKey=&category=
		home.GET("/products/:id", productControllers.GetProductByID(client, log)) // GET /api/Home/products/7
		home.GET("/Categories", productControllers.GetCategories(client, log))    // GET /api/Home/Categories
		home.GET("/ExportProducts", productControllers.ExportProductsToExcel(querier, log))

		// ──────────────── Shopping Cart ────────────────
		home.POST("/AddToCart", cartControllers.AddToCart(store))                 // POST /api/Home/AddToCart
		home.DELETE("/DeleteFromCart/:id", cartControllers.DeleteFromCart(store)) // DELETE /api/Home/DeleteFromCart/3
		home.GET("/Cart", cartControllers.GetCart(agg, log))                      // GET /api/Home/Cart
	}
}
