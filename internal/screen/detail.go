package screen

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/locale"
	"github.com/mperko/cjenik/internal/model"
	"github.com/mperko/cjenik/internal/session"
)

// DetailScreen is one list with its products. The total shown always comes
// from the server's list record, never from summing products locally.
type DetailScreen struct {
	client  *api.Client
	session *session.Manager
	tr      *locale.Translator

	mu       sync.Mutex
	mutating bool
	list     model.ShoppingList
	products []model.Product
}

// NewDetailScreen creates a detail screen; call Load before rendering.
func NewDetailScreen(client *api.Client, sess *session.Manager, tr *locale.Translator) *DetailScreen {
	return &DetailScreen{client: client, session: sess, tr: tr}
}

// List returns the list shown.
func (s *DetailScreen) List() model.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list
}

// Products returns the rows currently shown.
func (s *DetailScreen) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.products...)
}

// Load fetches the list detail.
func (s *DetailScreen) Load(ctx context.Context, listID int64) error {
	detail, err := s.client.GetList(ctx, listID)
	if err != nil {
		return err
	}
	s.apply(detail)
	return nil
}

// AddProduct validates the form, converts the price text to cents, and
// posts the product with a fresh client-side app id. The server's refreshed
// detail replaces the screen contents.
func (s *DetailScreen) AddProduct(ctx context.Context, productName, company, priceText string) error {
	lang := s.session.Display().Language
	if strings.TrimSpace(productName) == "" || strings.TrimSpace(priceText) == "" {
		return fmt.Errorf("%w: %s", ErrValidation, s.tr.Must(lang, "products.errors.fill_fields"))
	}
	priceInCent, err := locale.ToCent(priceText)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, s.tr.Must(lang, "forms.enters.enter_price"))
	}

	if !s.beginMutation() {
		return ErrBusy
	}
	defer s.endMutation()

	detail, err := s.client.AddProduct(ctx, s.List().ID, api.ProductInput{
		AppID:       locale.CreateAppID(),
		ProductName: productName,
		Company:     company,
		PriceInCent: priceInCent,
	})
	if err != nil {
		return err
	}
	s.apply(detail)
	return nil
}

// DeleteProduct removes a product; the server recomputes the total.
func (s *DetailScreen) DeleteProduct(ctx context.Context, productID int64) error {
	if !s.beginMutation() {
		return ErrBusy
	}
	defer s.endMutation()

	detail, err := s.client.DeleteProduct(ctx, s.List().ID, productID)
	if err != nil {
		return err
	}
	s.apply(detail)
	return nil
}

// Render writes the detail view: header, product rows, server total.
func (s *DetailScreen) Render(w io.Writer) {
	display := s.session.Display()
	lang := display.Language

	s.mu.Lock()
	list := s.list
	products := append([]model.Product(nil), s.products...)
	s.mu.Unlock()

	fmt.Fprintf(w, "%s  %s: %s\n", list.ShopName, s.tr.Must(lang, "date"), locale.HumanizeDateString(list.TakenAt))
	for _, p := range products {
		name := p.ProductName
		if p.Company != "" {
			name = p.Company + " " + name
		}
		fmt.Fprintf(w, "  [%d] %s  %s\n", p.ID, name, locale.HumanizePrice(p.PriceInCent, list.Currency))
	}
	fmt.Fprintf(w, "%s: %s\n", s.tr.Must(lang, "total"), locale.HumanizePrice(list.TotalPriceInCent, list.Currency))
}

func (s *DetailScreen) apply(detail api.ListDetail) {
	s.mu.Lock()
	s.list = detail.List
	s.products = detail.Products
	s.mu.Unlock()
}

func (s *DetailScreen) beginMutation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutating {
		return false
	}
	s.mutating = true
	return true
}

func (s *DetailScreen) endMutation() {
	s.mu.Lock()
	s.mutating = false
	s.mu.Unlock()
}
