package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/seedcatalog/backend/config"
	"github.com/seedcatalog/backend/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testRegistryNames = []string{"Kale", "Swiss Chard", "Broccoli", "Arugula", "Pea", "Sunflower"}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	service := usecase.NewCatalogService(
		usecase.NewNameRegistry(testRegistryNames),
		nil,
		nil,
		usecase.CatalogServiceConfig{
			Province: "BC",
			Suppliers: map[string]usecase.SupplierProfile{
				"sprouting": {Currency: "CAD", CommercialUse: true},
			},
		},
	)

	cfg := &config.Config{
		Server:    config.ServerConfig{Environment: "development", AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{PerIP: 0},
	}
	return SetupRouter(cfg, NewHandler(service))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestNormalizeProductEndpoint(t *testing.T) {
	router := testRouter(t)

	t.Run("normalizes a valid request", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/normalize", map[string]any{
			"title":    "Organic Kale, Red Russian Seeds",
			"url":      "https://example.com/kale",
			"supplier": "sprouting",
			"variations": []map[string]any{
				{"size_text": "500 g", "price_text": "$11.50", "in_stock": true},
			},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
		}

		var body struct {
			Product struct {
				CommonName   string `json:"common_name"`
				CultivarName string `json:"cultivar_name"`
				Organic      bool   `json:"organic"`
				Variations   []struct {
					Size          string `json:"size"`
					CanadianCosts struct {
						TotalCAD float64 `json:"total_cad"`
					} `json:"canadian_costs"`
				} `json:"variations"`
			} `json:"product"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body.Product.CommonName != "Kale" {
			t.Errorf("common_name = %q, want Kale", body.Product.CommonName)
		}
		if body.Product.CultivarName != "Red Russian" {
			t.Errorf("cultivar_name = %q, want Red Russian", body.Product.CultivarName)
		}
		if !body.Product.Organic {
			t.Error("organic = false, want true")
		}
		if len(body.Product.Variations) != 1 {
			t.Fatalf("got %d variations, want 1", len(body.Product.Variations))
		}
		if body.Product.Variations[0].Size != "500 grams" {
			t.Errorf("size = %q, want 500 grams", body.Product.Variations[0].Size)
		}
		if body.Product.Variations[0].CanadianCosts.TotalCAD != 17.95 {
			t.Errorf("total_cad = %v, want 17.95", body.Product.Variations[0].CanadianCosts.TotalCAD)
		}
	})

	t.Run("includes warnings for incomplete products", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/normalize", map[string]any{
			"title":    "Kale",
			"supplier": "sprouting",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body struct {
			Warnings []string `json:"warnings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if len(body.Warnings) == 0 {
			t.Error("warnings is empty, want at least one for missing url and variations")
		}
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/normalize", map[string]any{
			"supplier": "sprouting",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/normalize", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestLandedCostEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/landed-cost", map[string]any{
		"base_price":      100,
		"source_currency": "USD",
		"province":        "BC",
		"min_shipping":    12.50,
		"max_shipping":    125.00,
		"brokerage_fee":   17.50,
		"commercial_use":  true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}

	var body struct {
		BasePriceCAD float64 `json:"base_price_cad"`
		TotalCAD     float64 `json:"total_cad"`
		BrokerageCAD float64 `json:"brokerage_cad"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.BasePriceCAD != 137 {
		t.Errorf("base_price_cad = %v, want 137", body.BasePriceCAD)
	}
	if body.BrokerageCAD != 17.50 {
		t.Errorf("brokerage_cad = %v, want 17.50", body.BrokerageCAD)
	}
	if body.TotalCAD != 226.60 {
		t.Errorf("total_cad = %v, want 226.60", body.TotalCAD)
	}
}

func TestCommonNamesEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/registry/common-names", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Count       int      `json:"count"`
		CommonNames []string `json:"common_names"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Count != len(testRegistryNames) {
		t.Errorf("count = %d, want %d", body.Count, len(testRegistryNames))
	}
	if len(body.CommonNames) == 0 || body.CommonNames[0] != "Swiss Chard" {
		t.Errorf("common_names[0] = %v, want Swiss Chard first (longest)", body.CommonNames)
	}
}
