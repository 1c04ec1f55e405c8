package models

import (
	"errors"
	"fmt"
	"time"
)

// Wire records for the platform API. Everything arriving over the gateway is
// parsed into these and validated before the rest of the storefront sees it.

type MenuItemRef struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartEntry is one line of the server cart snapshot. ID is the cart line id;
// MenuItem carries the underlying item the local cart keys on.
type CartEntry struct {
	ID       string      `json:"_id"`
	MenuItem MenuItemRef `json:"menuItem"`
	Quantity int         `json:"quantity"`
}

// CartSnapshot is the GET /api/cart response. DeliveryFee and ServiceFee are
// authoritative; the storefront never derives fees on its own.
type CartSnapshot struct {
	Items       []CartEntry `json:"items"`
	DeliveryFee float64     `json:"deliveryFee"`
	ServiceFee  float64     `json:"serviceFee"`
}

var (
	ErrMissingItemID   = errors.New("cart entry missing menu item id")
	ErrNegativePrice   = errors.New("cart entry has negative price")
	ErrInvalidQuantity = errors.New("cart entry quantity below 1")
	ErrNegativeFee     = errors.New("cart snapshot has negative fee")
)

func (s *CartSnapshot) Validate() error {
	if s.DeliveryFee < 0 || s.ServiceFee < 0 {
		return ErrNegativeFee
	}
	for i, entry := range s.Items {
		if entry.MenuItem.ID == "" {
			return fmt.Errorf("item %d: %w", i, ErrMissingItemID)
		}
		if entry.MenuItem.Price < 0 {
			return fmt.Errorf("item %d: %w", i, ErrNegativePrice)
		}
		if entry.Quantity < 1 {
			return fmt.Errorf("item %d: %w", i, ErrInvalidQuantity)
		}
	}
	return nil
}

type Restaurant struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cuisine     string  `json:"cuisine"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
}

type MenuItem struct {
	ID           string  `json:"_id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
}

type Review struct {
	ID           string    `json:"_id"`
	RestaurantID string    `json:"restaurantId"`
	Username     string    `json:"username"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Order struct {
	ID        string      `json:"_id"`
	Items     []CartEntry `json:"items"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}

// User roles as reported by the platform; anything that is not admin is
// treated as a regular user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type AuthUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session is what login and registration return: the opaque bearer token plus
// the user object whose role drives view gating.
type Session struct {
	Token string   `json:"token"`
	User  AuthUser `json:"userObject"`
}

func (s *Session) Validate() error {
	if s.Token == "" {
		return errors.New("session missing token")
	}
	if s.User.ID == "" {
		return errors.New("session missing user id")
	}
	return nil
}

// CheckoutSession is the payment provider redirect returned by the platform.
type CheckoutSession struct {
	URL string `json:"url"`
}
