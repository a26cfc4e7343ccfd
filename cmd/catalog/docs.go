package main

// @title Catalog Service API
// @version 1.0
// @description Storefront catalog service: products, categories, slugs, and search
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email admin@divinelits.com

// @license.name MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Catalog
// @tag.description Public storefront endpoints

// @tag.name Admin
// @tag.description Admin-only catalog management endpoints

// @tag.name Health
// @tag.description Health check endpoints
