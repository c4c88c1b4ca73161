package route

import (
	"storefront-service/src/internal/delivery/http"
	"storefront-service/src/internal/delivery/http/middleware"
	"storefront-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                *fiber.App
	Log                log.Log
	CatalogController  *http.CatalogController
	CartController     *http.CartController
	CheckoutController *http.CheckoutController
	AdminController    *http.AdminController
	AuthMiddleware     fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupStorefrontRoute()
	c.SetupAdminRoute()
}

// SetupStorefrontRoute wires the public surface: catalog browsing, the
// session cart and checkout. No auth; the cart session rides the
// X-Session-Id header.
func (c *RouteConfig) SetupStorefrontRoute() {
	v1 := c.App.Group("/storefront/v1")

	v1.Get("/towns", c.CatalogController.GetTowns)
	v1.Get("/restaurants", c.CatalogController.GetRestaurants)
	v1.Get("/dishes", c.CatalogController.GetDishes)
	v1.Get("/dishes/:dishId/options", c.CatalogController.GetDishOptions)
	v1.Get("/dishes/:dishId/complements", c.CatalogController.GetDishComplements)
	v1.Get("/payment-methods", c.CatalogController.GetPaymentMethods)

	v1.Get("/cart", c.CartController.GetCart)
	v1.Post("/cart/items", c.CartController.AddToCart)
	v1.Patch("/cart/items", c.CartController.UpdateQuantity)
	v1.Delete("/cart", c.CartController.ClearCart)

	v1.Post("/checkout", c.CheckoutController.Checkout)
	v1.Get("/orders/:orderNumber", c.CheckoutController.GetOrder)
}

// SetupAdminRoute wires the back-office surface behind bearer auth;
// only login is public.
func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/admin/v1")
	admin.Post("/login", c.AdminController.Login)

	admin.Use(c.AuthMiddleware)
	admin.Post("/register", c.AdminController.Register)

	admin.Post("/restaurants", c.AdminController.CreateRestaurant)
	admin.Get("/restaurants", c.AdminController.ListRestaurants)
	admin.Put("/restaurants/:id", c.AdminController.UpdateRestaurant)
	admin.Patch("/restaurants/:id/toggle", c.AdminController.ToggleRestaurant)
	admin.Delete("/restaurants/:id", c.AdminController.DeleteRestaurant)

	admin.Post("/dishes", c.AdminController.CreateDish)
	admin.Get("/dishes", c.AdminController.ListDishes)
	admin.Put("/dishes/:id", c.AdminController.UpdateDish)
	admin.Delete("/dishes/:id", c.AdminController.DeleteDish)
	admin.Post("/dishes/:id/image", c.AdminController.UploadDishImage)
	admin.Get("/dishes/:dishId/complements", c.AdminController.ListDishComplements)

	admin.Post("/menu-items", c.AdminController.CreateMenuItem)
	admin.Get("/menu-items", c.AdminController.ListMenuItems)
	admin.Put("/menu-items/:id", c.AdminController.UpdateMenuItem)
	admin.Patch("/menu-items/:id/toggle", c.AdminController.ToggleMenuItem)
	admin.Delete("/menu-items/:id", c.AdminController.DeleteMenuItem)

	admin.Post("/complements", c.AdminController.CreateComplement)
	admin.Get("/complements", c.AdminController.ListComplements)
	admin.Put("/complements/:id", c.AdminController.UpdateComplement)
	admin.Delete("/complements/:id", c.AdminController.DeleteComplement)

	admin.Post("/dish-complements", c.AdminController.CreateDishComplement)
	admin.Put("/dish-complements/:id", c.AdminController.UpdateDishComplement)
	admin.Delete("/dish-complements/:id", c.AdminController.DeleteDishComplement)

	admin.Post("/zones", c.AdminController.CreateZone)
	admin.Get("/zones", c.AdminController.ListZones)
	admin.Put("/zones/:id", c.AdminController.UpdateZone)
	admin.Patch("/zones/:id/toggle", c.AdminController.ToggleZone)
	admin.Delete("/zones/:id", c.AdminController.DeleteZone)

	admin.Post("/towns", c.AdminController.CreateTown)
	admin.Get("/towns", c.AdminController.ListTowns)
	admin.Put("/towns/:id", c.AdminController.UpdateTown)
	admin.Patch("/towns/:id/toggle", c.AdminController.ToggleTown)
	admin.Delete("/towns/:id", c.AdminController.DeleteTown)

	admin.Post("/streets", c.AdminController.CreateStreet)
	admin.Get("/streets", c.AdminController.ListStreets)
	admin.Delete("/streets/:id", c.AdminController.DeleteStreet)

	admin.Post("/payment-methods", c.AdminController.CreatePaymentMethod)
	admin.Get("/payment-methods", c.AdminController.ListPaymentMethods)
	admin.Put("/payment-methods/:id", c.AdminController.UpdatePaymentMethod)
	admin.Delete("/payment-methods/:id", c.AdminController.DeletePaymentMethod)

	admin.Get("/orders", c.AdminController.ListOrders)
	admin.Get("/orders/:orderNumber", c.AdminController.GetOrder)
	admin.Patch("/orders/:orderNumber/status", c.AdminController.SetOrderStatus)
	admin.Delete("/orders/:orderNumber", c.AdminController.DeleteOrder)
	admin.Post("/reconcile", c.AdminController.TriggerReconcile)
}
