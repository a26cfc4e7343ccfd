package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetCart godoc
// @Summary Get the current user's cart
// @Description Get all active cart lines with the cart total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{lines=array,total=number}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// GetTotalItems godoc
// @Summary Cart badge count
// @Description Get the number of distinct cart lines
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{count=int}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart/count [get]
func (h *CartHandler) GetTotalItemsDoc() {}

// AddItem godoc
// @Summary Add one unit to the cart
// @Description Create a cart line or increment an existing one for the (product, size, variant) key
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=string,size=string,variant_id=string,category=string,price=number} true "Cart line key and product snapshot"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// DelOneItem godoc
// @Summary Remove one unit from the cart
// @Description Decrement a cart line; the line disappears when its quantity reaches zero
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=string,size=string,variant_id=string} true "Cart line key"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/cart/items [delete]
func (h *CartHandler) DelOneItemDoc() {}

// GetWishlist godoc
// @Summary Get the current user's wishlist
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/wishlist [get]
func (h *CartHandler) GetWishlistDoc() {}

// ToggleWishlist godoc
// @Summary Toggle a product on the wishlist
// @Description Add the product when absent, remove it when present
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=string} true "Product ID"
// @Success 200 {object} object{success=bool,data=object{product_id=string,wishlisted=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/wishlist/toggle [post]
func (h *CartHandler) ToggleWishlistDoc() {}
