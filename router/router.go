package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/controllers"
	"github.com/SANJEEV-1208/caters-backend/middlewares"
	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/services"
)

// SetupRouter wires the pipeline services and the HTTP surface.
// session and cache may be the Redis or the in-memory implementations.
func SetupRouter(db *gorm.DB, session services.SessionState, cache services.OrderCache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	index := services.NewMenuAvailability(db)
	carts := services.NewCartService(db)
	submitter := services.NewOrderSubmitter(db, cache)
	checkout := services.NewCheckoutService(db, carts, index, session, submitter)
	status := services.NewStatusService(db, cache)
	reorder := services.NewReorderService(db, cache, carts, index)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db, index)
	cartCtrl := controllers.NewCartController(db, carts, index, session)
	checkoutCtrl := controllers.NewCheckoutController(checkout, session)
	orderCtrl := controllers.NewOrderController(db, cache, status, reorder)
	tableCtrl := controllers.NewTableController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Browsing needs no login.
	r.GET("/caterers/:caterer_id", userCtrl.GetCaterer)
	r.GET("/caterers/:caterer_id/menu", menuCtrl.GetCatererMenu)
	r.GET("/caterers/:caterer_id/availability", menuCtrl.GetAvailability)
	r.GET("/tables/:table_id/scan", tableCtrl.ScanTable)

	// ----------------------------------------------------------------
	//                      CUSTOMER ROUTES
	// ----------------------------------------------------------------
	customer := r.Group("/")
	customer.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleCustomer))
	{
		customer.GET("/cart", cartCtrl.GetCart)
		customer.POST("/cart/items", cartCtrl.AddItem)
		customer.PATCH("/cart/items/:item_id/decrement", cartCtrl.DecrementItem)
		customer.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)
		customer.DELETE("/cart", cartCtrl.ClearCart)
		customer.POST("/cart/validate", cartCtrl.ValidateCart)

		customer.POST("/session/caterer", checkoutCtrl.SelectCaterer)
		customer.POST("/session/delivery-date", checkoutCtrl.SetDeliveryDate)

		customer.POST("/checkout", checkoutCtrl.PlaceOrder)

		customer.GET("/orders", orderCtrl.GetMyOrders)
		customer.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		customer.POST("/orders/:order_id/reorder", orderCtrl.ReorderOrder)
	}

	// ----------------------------------------------------------------
	//                      CATERER ROUTES
	// ----------------------------------------------------------------
	caterer := r.Group("/caterer")
	caterer.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleCaterer))
	{
		caterer.GET("/profile", userCtrl.GetProfile)

		caterer.GET("/menu", menuCtrl.GetMyMenu)
		caterer.POST("/menu", menuCtrl.CreateMenuItem)
		caterer.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
		caterer.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)

		caterer.GET("/tables", tableCtrl.GetMyTables)
		caterer.POST("/tables", tableCtrl.CreateTable)
		caterer.PATCH("/tables/:table_id", tableCtrl.SetTableActive)

		caterer.GET("/orders", orderCtrl.GetIncomingOrders)
		caterer.PATCH("/orders/:order_id/status", orderCtrl.AdvanceStatus)
	}

	// Order event stream (both roles).
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/orders", controllers.OrderEventsHandler)
	}

	return r
}
