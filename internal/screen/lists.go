// Package screen holds the terminal renderings of the app's views: the
// paged lists index, the list detail with its products, and the legal
// pages. Screens read session state, call the API once per action, and
// format through the locale package; they never write session state.
package screen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mperko/cjenik/internal/api"
	"github.com/mperko/cjenik/internal/locale"
	"github.com/mperko/cjenik/internal/model"
	"github.com/mperko/cjenik/internal/session"
)

// ErrBusy reports a mutating action attempted while another one is still
// in flight on the same screen. Mirrors a disabled submit button.
var ErrBusy = errors.New("another operation is in flight")

// ErrValidation marks client-side form validation failures; no network
// call was attempted.
var ErrValidation = errors.New("validation failed")

// ListsScreen is the paged shopping-lists index.
type ListsScreen struct {
	client  *api.Client
	session *session.Manager
	tr      *locale.Translator

	mu         sync.Mutex
	fetchSeq   uint64
	mutating   bool
	loading    bool
	pagination Pagination
	lists      []model.ShoppingList
}

// NewListsScreen creates the index screen starting at page 1.
func NewListsScreen(client *api.Client, sess *session.Manager, tr *locale.Translator) *ListsScreen {
	return &ListsScreen{
		client:     client,
		session:    sess,
		tr:         tr,
		pagination: NewPagination(1, 0),
	}
}

// Pagination returns the current page position.
func (s *ListsScreen) Pagination() Pagination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// Lists returns the rows currently shown.
func (s *ListsScreen) Lists() []model.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ShoppingList(nil), s.lists...)
}

// Loading reports whether a fetch or mutation is in flight.
func (s *ListsScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading || s.mutating
}

// Fetch loads one page of the index. Fetches are not sequenced against
// each other: each carries a sequence number and only the latest issued
// one is allowed to update the screen, so a slow earlier response cannot
// overwrite a newer one.
func (s *ListsScreen) Fetch(ctx context.Context, page int) error {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.loading = true
	s.mu.Unlock()

	result, err := s.client.Lists(ctx, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		// Superseded; the fetch that replaced this one owns the screen.
		return nil
	}
	s.loading = false
	if err != nil {
		return err
	}
	s.applyLocked(result)
	return nil
}

// NextPage fetches the following page; a no-op on the last page.
func (s *ListsScreen) NextPage(ctx context.Context) error {
	s.mu.Lock()
	next, ok := s.pagination.Next()
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Fetch(ctx, next.Page)
}

// PrevPage fetches the preceding page; a no-op on the first page.
func (s *ListsScreen) PrevPage(ctx context.Context) error {
	s.mu.Lock()
	prev, ok := s.pagination.Prev()
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Fetch(ctx, prev.Page)
}

// Create adds a list after validating the form fields locally.
func (s *ListsScreen) Create(ctx context.Context, input api.ListInput) error {
	if err := s.validateListInput(input); err != nil {
		return err
	}
	if !s.beginMutation() {
		return ErrBusy
	}
	defer s.endMutation()

	if _, err := s.client.CreateList(ctx, input); err != nil {
		return err
	}
	// Re-fetch so the new list shows with server-assigned fields.
	result, err := s.client.Lists(ctx, s.Pagination().Page)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.applyLocked(result)
	s.mu.Unlock()
	return nil
}

// Edit updates a list; the server's refreshed collection replaces the rows.
func (s *ListsScreen) Edit(ctx context.Context, id int64, input api.ListInput) error {
	if err := s.validateListInput(input); err != nil {
		return err
	}
	if !s.beginMutation() {
		return ErrBusy
	}
	defer s.endMutation()

	result, err := s.client.UpdateList(ctx, id, input)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.applyLocked(result)
	s.mu.Unlock()
	return nil
}

// Delete removes a list and shows the remaining collection.
func (s *ListsScreen) Delete(ctx context.Context, id int64) error {
	if !s.beginMutation() {
		return ErrBusy
	}
	defer s.endMutation()

	result, err := s.client.DeleteList(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.applyLocked(result)
	s.mu.Unlock()
	return nil
}

// Render writes the index the way the list screen shows it.
func (s *ListsScreen) Render(w io.Writer) {
	display := s.session.Display()
	lang := display.Language

	s.mu.Lock()
	lists := append([]model.ShoppingList(nil), s.lists...)
	pagination := s.pagination
	s.mu.Unlock()

	fmt.Fprintf(w, "%s (%s)\n", s.tr.Must(lang, "your_lists"), pagination)
	for _, l := range lists {
		fmt.Fprintf(w, "  [%d] %s  %s: %s | %s: %s\n",
			l.ID,
			l.ShopName,
			s.tr.Must(lang, "date"), locale.HumanizeDateString(l.TakenAt),
			s.tr.Must(lang, "total"), locale.HumanizePrice(l.TotalPriceInCent, l.Currency),
		)
	}
}

func (s *ListsScreen) applyLocked(result api.ListsPage) {
	s.lists = result.Lists
	s.pagination = NewPagination(result.Page, result.TotalLists)
}

func (s *ListsScreen) validateListInput(input api.ListInput) error {
	if input.ShopName == "" || input.TakenAt == "" || input.Currency == "" {
		lang := s.session.Display().Language
		return fmt.Errorf("%w: %s", ErrValidation, s.tr.Must(lang, "lists.errors.fill_fields"))
	}
	return nil
}

func (s *ListsScreen) beginMutation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutating {
		return false
	}
	s.mutating = true
	return true
}

func (s *ListsScreen) endMutation() {
	s.mu.Lock()
	s.mutating = false
	s.mu.Unlock()
}
