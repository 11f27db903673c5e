package api

import "time"

type Restaurant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Status       string    `json:"status"`
	Currency     string    `json:"currency"`
	OwnerID      string    `json:"owner_id"`
	PlatformFees bool      `json:"platform_fees"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	PriceMinor   int64  `json:"price_minor"`
	Available    bool   `json:"available"`
}

type Order struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	TotalMinor   int64     `json:"total_minor"`
	Provider     string    `json:"provider"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderParams struct {
	RestaurantID string          `json:"restaurant_id"`
	Items        []OrderItem     `json:"items"`
	Provider     string          `json:"provider,omitempty"`
	Metadata     map[string]bool `json:"metadata,omitempty"`
}

type OrderItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type StaffInvite struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type StaffInviteParams struct {
	RestaurantID string `json:"restaurant_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}
