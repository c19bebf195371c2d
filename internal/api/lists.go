package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mperko/cjenik/internal/model"
)

// ListsPage is one page of the lists index. TotalLists is the page count
// the pagination control runs on, as served by the backend.
type ListsPage struct {
	Lists      []model.ShoppingList `json:"lists"`
	TotalLists int                  `json:"total_lists"`
	Page       int                  `json:"page"`
}

// ListDetail is one list with its products and the server-computed total
// on the embedded list. The client never recomputes that total.
type ListDetail struct {
	Success  bool               `json:"success"`
	List     model.ShoppingList `json:"list"`
	Products []model.Product    `json:"products"`
}

// ListInput carries the editable fields of a shopping list; TakenAt is the
// wire date "YYYY-MM-DD".
type ListInput struct {
	ShopName string `json:"shop_name"`
	Currency string `json:"currency"`
	TakenAt  string `json:"taken_at"`
}

// Lists fetches one page of the lists index.
func (c *Client) Lists(ctx context.Context, page int) (ListsPage, error) {
	var resp ListsPage
	path := fmt.Sprintf("/lists?page=%d", page)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, authed); err != nil {
		return ListsPage{}, err
	}
	return resp, nil
}

// CreateList creates a list and returns the server's record of it.
func (c *Client) CreateList(ctx context.Context, input ListInput) (model.ShoppingList, error) {
	var resp struct {
		List model.ShoppingList `json:"list"`
	}
	if err := c.do(ctx, http.MethodPost, "/lists/", input, &resp, authed); err != nil {
		return model.ShoppingList{}, err
	}
	return resp.List, nil
}

// UpdateList edits a list. The server responds with the refreshed lists
// collection, which the index screen re-renders directly.
func (c *Client) UpdateList(ctx context.Context, id int64, input ListInput) (ListsPage, error) {
	var resp ListsPage
	path := fmt.Sprintf("/lists/%d", id)
	if err := c.do(ctx, http.MethodPut, path, input, &resp, authed); err != nil {
		return ListsPage{}, err
	}
	return resp, nil
}

// DeleteList removes a list and returns the remaining collection.
func (c *Client) DeleteList(ctx context.Context, id int64) (ListsPage, error) {
	var resp ListsPage
	path := fmt.Sprintf("/lists/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp, authed); err != nil {
		return ListsPage{}, err
	}
	return resp, nil
}

// GetList fetches one list with its products.
func (c *Client) GetList(ctx context.Context, id int64) (ListDetail, error) {
	var resp ListDetail
	path := fmt.Sprintf("/lists/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp, authed); err != nil {
		return ListDetail{}, err
	}
	if !resp.Success {
		return ListDetail{}, rejected("")
	}
	return resp, nil
}

// ProductInput carries a new product. AppID is the client-generated
// correlation id; the server assigns the durable one.
type ProductInput struct {
	AppID       string `json:"app_id"`
	ProductName string `json:"product_name"`
	Company     string `json:"company"`
	PriceInCent int64  `json:"price_in_cent"`
}

type productRequest struct {
	Product ProductInput `json:"product"`
}

// AddProduct appends a product to a list and returns the refreshed detail,
// including the server-recomputed total.
func (c *Client) AddProduct(ctx context.Context, listID int64, input ProductInput) (ListDetail, error) {
	var resp ListDetail
	path := fmt.Sprintf("/lists/%d/products", listID)
	if err := c.do(ctx, http.MethodPost, path, productRequest{Product: input}, &resp, authed); err != nil {
		return ListDetail{}, err
	}
	return resp, nil
}

// DeleteProduct removes a product and returns the refreshed detail.
func (c *Client) DeleteProduct(ctx context.Context, listID, productID int64) (ListDetail, error) {
	var resp ListDetail
	path := fmt.Sprintf("/lists/%d/products/%d", listID, productID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp, authed); err != nil {
		return ListDetail{}, err
	}
	if !resp.Success {
		return ListDetail{}, rejected("")
	}
	return resp, nil
}
