package web

import (
	"encoding/json"
	"net/http"
	"testing"
)

const validCheckoutBody = `{
	"customerName": "João Silva",
	"customerPhone": "(54) 99999-9999",
	"items": [
		{"itemId": 1, "name": "Bolo de Cenoura", "unitPrice": 1200, "quantity": 2},
		{"itemId": 2, "name": "Coxinha", "unitPrice": 850, "quantity": 1}
	]
}`

func TestCheckoutValidationOrder(t *testing.T) {
	s := testServer()
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing name", `{"customerPhone":"123","items":[{"itemId":1,"name":"X","unitPrice":100,"quantity":1}]}`, "customerName"},
		{"missing phone", `{"customerName":"João","items":[{"itemId":1,"name":"X","unitPrice":100,"quantity":1}]}`, "customerPhone"},
		{"empty cart", `{"customerName":"João","customerPhone":"123","items":[]}`, "items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, s, http.MethodPost, "/api/checkout", tt.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp struct {
				Field string `json:"field"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Field != tt.wantField {
				t.Errorf("field = %q, want %q", resp.Field, tt.wantField)
			}
		})
	}
}

// Without a store the deep link must still come back; persistence
// failure is only a warning.
func TestCheckoutReturnsLinkWithoutStore(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodPost, "/api/checkout", validCheckoutBody, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	var resp struct {
		WhatsAppURL string `json:"whatsappUrl"`
		OrderID     int64  `json:"orderId"`
		Warning     string `json:"warning"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.WhatsAppURL == "" {
		t.Fatal("no whatsappUrl in response")
	}
	if resp.OrderID != 0 {
		t.Errorf("orderId = %d, want 0 without a store", resp.OrderID)
	}
	if resp.Warning == "" {
		t.Error("expected a persistence warning")
	}

	wantPrefix := "https://wa.me/5554996027120?text="
	if len(resp.WhatsAppURL) < len(wantPrefix) || resp.WhatsAppURL[:len(wantPrefix)] != wantPrefix {
		t.Errorf("whatsappUrl = %s, want prefix %s", resp.WhatsAppURL, wantPrefix)
	}
}

func TestCheckoutFitMealRecipient(t *testing.T) {
	s := testServer()
	body := `{
		"customerName": "João Silva",
		"customerPhone": "(54) 99999-9999",
		"fitMeal": true,
		"items": [{"itemId": 8, "name": "Marmita Fit Frango Grelhado", "unitPrice": 2800, "quantity": 1}]
	}`
	w := doJSON(t, s, http.MethodPost, "/api/checkout", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		WhatsAppURL string `json:"whatsappUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	wantPrefix := "https://wa.me/5554999999999?text="
	if len(resp.WhatsAppURL) < len(wantPrefix) || resp.WhatsAppURL[:len(wantPrefix)] != wantPrefix {
		t.Errorf("whatsappUrl = %s, want fit-meal recipient", resp.WhatsAppURL)
	}
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodPost, "/api/checkout", `{"customerName": 12`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetOrderInvalidID(t *testing.T) {
	s := testServer()
	w := doJSON(t, s, http.MethodGet, "/api/orders/abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
