package screen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
)

const detailBody = `{
	"success":true,
	"list":{"id":7,"shop_name":"Konzum","taken_at":"2024-03-07","currency":"€","total_price_in_cent":1250},
	"products":[{"id":1,"app_id":"55512345","product_name":"Milk","company":"Dukat","price_in_cent":1250}]
}`

func detailHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /lists/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailBody)
	})
	return mux
}

func TestDetailLoad(t *testing.T) {
	env := newScreenEnv(t, enFallback, detailHandler(t))
	s := NewDetailScreen(env.client, env.session, env.tr)

	if err := s.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.List().TotalPriceInCent; got != 1250 {
		t.Errorf("total = %d, want 1250", got)
	}
	if got := s.Products(); len(got) != 1 || got[0].ProductName != "Milk" {
		t.Errorf("products = %+v", got)
	}
}

func TestDetailAddProductConvertsPrice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /lists/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailBody)
	})

	var gotBody struct {
		Product struct {
			AppID       string `json:"app_id"`
			ProductName string `json:"product_name"`
			PriceInCent int64  `json:"price_in_cent"`
		} `json:"product"`
	}
	mux.HandleFunc("POST /lists/7/products", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode product request: %v", err)
		}
		fmt.Fprint(w, `{
			"success":true,
			"list":{"id":7,"currency":"€","total_price_in_cent":2500},
			"products":[{"id":1,"product_name":"Milk","price_in_cent":1250},{"id":2,"product_name":"Milk","price_in_cent":1250}]
		}`)
	})

	env := newScreenEnv(t, enFallback, mux)
	s := NewDetailScreen(env.client, env.session, env.tr)

	if err := s.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.AddProduct(context.Background(), "Milk", "", "12.5"); err != nil {
		t.Fatalf("add product: %v", err)
	}

	if gotBody.Product.PriceInCent != 1250 {
		t.Errorf("price_in_cent = %d, want 1250", gotBody.Product.PriceInCent)
	}
	if gotBody.Product.ProductName != "Milk" {
		t.Errorf("product_name = %q, want Milk", gotBody.Product.ProductName)
	}
	if gotBody.Product.AppID == "" {
		t.Error("app_id missing from request")
	}

	// Screen adopts the server's recomputed total.
	if got := s.List().TotalPriceInCent; got != 2500 {
		t.Errorf("total = %d, want server's 2500", got)
	}
}

func TestDetailAddProductValidation(t *testing.T) {
	var calls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /lists/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailBody)
	})
	mux.HandleFunc("POST /lists/7/products", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	env := newScreenEnv(t, enFallback, mux)
	s := NewDetailScreen(env.client, env.session, env.tr)
	if err := s.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.AddProduct(context.Background(), "", "", "12.5"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: err = %v, want ErrValidation", err)
	}
	if err := s.AddProduct(context.Background(), "Milk", "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty price: err = %v, want ErrValidation", err)
	}
	if err := s.AddProduct(context.Background(), "Milk", "", "abc"); !errors.Is(err, ErrValidation) {
		t.Errorf("non-numeric price: err = %v, want ErrValidation", err)
	}
	if calls.Load() != 0 {
		t.Error("validation failures still reached the network")
	}
}

func TestDetailDeleteProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /lists/7", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailBody)
	})
	mux.HandleFunc("DELETE /lists/7/products/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"list":{"id":7,"currency":"€","total_price_in_cent":0},"products":[]}`)
	})

	env := newScreenEnv(t, enFallback, mux)
	s := NewDetailScreen(env.client, env.session, env.tr)
	if err := s.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.DeleteProduct(context.Background(), 1); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if got := s.Products(); len(got) != 0 {
		t.Errorf("products = %+v, want empty", got)
	}
	if got := s.List().TotalPriceInCent; got != 0 {
		t.Errorf("total = %d, want server's 0", got)
	}
}

func TestDetailRenderShowsServerTotal(t *testing.T) {
	env := newScreenEnv(t, enFallback, detailHandler(t))
	s := NewDetailScreen(env.client, env.session, env.tr)
	if err := s.Load(context.Background(), 7); err != nil {
		t.Fatalf("load: %v", err)
	}

	var out strings.Builder
	s.Render(&out)
	got := out.String()

	for _, want := range []string{"Konzum", "07.03.2024", "Dukat Milk", "Total: €12.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("render output missing %q:\n%s", want, got)
		}
	}
}
