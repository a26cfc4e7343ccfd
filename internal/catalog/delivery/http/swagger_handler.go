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

// ListProducts godoc
// @Summary List visible products
// @Description Get all visible products, optionally filtered by category
// @Tags Catalog
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a visible product with its default variant resolved
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// GetProductBySlug godoc
// @Summary Resolve product from URL slug
// @Description Decode a name slug and match it case-insensitively against visible products
// @Tags Catalog
// @Produce json
// @Param slug path string true "Product name slug"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/slug/{slug} [get]
func (h *CatalogHandler) GetProductBySlugDoc() {}

// RandomProducts godoc
// @Summary Random product sample
// @Description Get a uniform random sample of visible products
// @Tags Catalog
// @Produce json
// @Param exclude query string false "Product ID to exclude"
// @Param limit query int false "Sample size (default 6)"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/products/random [get]
func (h *CatalogHandler) RandomProductsDoc() {}

// GetCategoryPage godoc
// @Summary Category landing page
// @Description Get category metadata plus the category's visible products
// @Tags Catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/categories/{slug} [get]
func (h *CatalogHandler) GetCategoryPageDoc() {}

// SearchProducts godoc
// @Summary Search the catalog
// @Description Filter and sort visible products by text query, category, and price range
// @Tags Catalog
// @Produce json
// @Param q query string false "Text query"
// @Param category query string false "Category filter"
// @Param minPrice query number false "Minimum price (default 0)"
// @Param maxPrice query number false "Maximum price (default 1000)"
// @Param sortBy query string false "Sort key: name, name-desc, price-asc, price-desc, category"
// @Success 200 {object} object{success=bool,data=object{results=array,total=int,filters=object}}
// @Router /api/search [get]
func (h *CatalogHandler) SearchProductsDoc() {}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new product (Admin only)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,discount=number,category=string,status=string,sizes=array,variants=array,images=array} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/admin/products [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace a product's fields (Admin only). Deleted products cannot be restored.
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object{name=string,description=string,price=number,discount=number,category=string,status=string,sizes=array,variants=array,images=array} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/admin/products/{id} [put]
func (h *CatalogHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Soft-delete a product
// @Description Mark a product DELETED (Admin only). The record is retained.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/admin/products/{id} [delete]
func (h *CatalogHandler) DeleteProductDoc() {}
