package main

// @title Cart Service API
// @version 1.0
// @description Storefront cart and wishlist service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email admin@divinelits.com

// @license.name MIT

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Cart
// @tag.description Per-user cart endpoints

// @tag.name Wishlist
// @tag.description Per-user wishlist endpoints

// @tag.name Health
// @tag.description Health check endpoints
