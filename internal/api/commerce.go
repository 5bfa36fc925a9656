package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FarmX-org/FarmX-mobile/internal/model"
)

func (c *Client) SubmitFeedback(ctx context.Context, req model.FeedbackRequest) error {
	_, err := c.do(ctx, call{
		method:  http.MethodPost,
		route:   "/feedback",
		path:    "/feedback",
		body:    req,
		orderID: req.OrderID,
	})
	return err
}

// FarmerFeedback lists the ratings received by the session farmer's farms.
func (c *Client) FarmerFeedback(ctx context.Context) ([]model.Feedback, error) {
	var out []model.Feedback
	err := c.getJSON(ctx, call{route: "/feedback/farmer", path: "/feedback/farmer"}, &out)
	return out, err
}

func (c *Client) StoreProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.getJSON(ctx, call{route: "/products/store", path: "/products/store"}, &out)
	return out, err
}

func (c *Client) Cart(ctx context.Context) (model.Cart, error) {
	var out model.Cart
	err := c.getJSON(ctx, call{route: "/cart", path: "/cart"}, &out)
	return out, err
}

func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	_, err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/cart/items",
		path:   "/cart/items",
		body:   model.AddToCartRequest{ProductID: productID, Quantity: quantity},
	})
	return err
}

// UpdateCartItem sets the quantity of one cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	_, err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/cart/items/{id}",
		path:   fmt.Sprintf("/cart/items/%d", itemID),
		body:   model.CartQuantityRequest{Quantity: quantity},
	})
	return err
}

func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, call{method: http.MethodDelete, route: "/cart/clear", path: "/cart/clear"})
	return err
}

// Checkout turns the cart into an order. The cart itself is cleared by a
// separate call.
func (c *Client) Checkout(ctx context.Context) error {
	_, err := c.do(ctx, call{method: http.MethodPost, route: "/orders/from-cart", path: "/orders/from-cart"})
	return err
}

func (c *Client) Farms(ctx context.Context) ([]model.Farm, error) {
	var out []model.Farm
	err := c.getJSON(ctx, call{route: "/farms", path: "/farms"}, &out)
	return out, err
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.getJSON(ctx, call{route: "/users", path: "/users"}, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context) (model.User, error) {
	var out model.User
	err := c.getJSON(ctx, call{route: "/users/me", path: "/users/me"}, &out)
	return out, err
}

// UpdateProfile sends the text fields of the profile form as multipart data.
func (c *Client) UpdateProfile(ctx context.Context, fields FormData) (model.User, error) {
	r := call{method: http.MethodPut, route: "/users/me", path: "/users/me", body: fields}
	resp, err := c.do(ctx, r)
	if err != nil {
		return model.User{}, err
	}
	var out model.User
	err = decodeJSON(resp, r, &out)
	return out, err
}
