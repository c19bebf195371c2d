package api

import (
	"context"
	"net/http"

	"github.com/mperko/cjenik/internal/model"
)

type legalsResponse struct {
	Success    bool              `json:"success"`
	LegalPages []model.LegalPage `json:"legal_pages"`
}

// LegalPages fetches the legal documents. No auth required.
func (c *Client) LegalPages(ctx context.Context) ([]model.LegalPage, error) {
	var resp legalsResponse
	if err := c.do(ctx, http.MethodGet, "/legals", nil, &resp, unauthed); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, rejected("")
	}
	return resp.LegalPages, nil
}
