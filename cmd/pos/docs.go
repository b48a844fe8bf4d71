package main

// @title Restaurant POS API
// @version 1.0
// @description Point of sale service for dine-in restaurants: menu, tables, carts, orders, payments and reservations.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/dhaba/restaurant-pos
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/dhaba/restaurant-pos/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Menu
// @tag.description Menu item endpoints

// @tag.name Tables
// @tag.description Floor plan and table status endpoints

// @tag.name Orders
// @tag.description Cart and order endpoints

// @tag.name Payments
// @tag.description Payment and daily collection endpoints

// @tag.name Reservations
// @tag.description Reservation endpoints

// @tag.name Inventory
// @tag.description Inventory endpoints

// @tag.name Health
// @tag.description Health check endpoints
