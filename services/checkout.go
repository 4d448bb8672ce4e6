package services

import (
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"cafe-julio/config"
	"cafe-julio/models"
)

const pickupLocation = "Café da Júlio - Farroupilha"

// Composer turns a validated cart plus customer contact info into the
// WhatsApp order message and deep link. Persistence is the caller's job;
// the composer only captures the CreateOrderInput for it.
type Composer struct {
	orderRecipients []string
	fitRecipient    string
	next            atomic.Uint64
}

func NewComposer(cfg config.WhatsAppConfig) *Composer {
	return &Composer{
		orderRecipients: cfg.OrderRecipients,
		fitRecipient:    cfg.FitMealRecipient,
	}
}

type CheckoutInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
	FitMeal       bool // marmitas fit flow: own header and recipient
	Cart          *Cart
}

type CheckoutResult struct {
	Message     string
	Recipient   string
	WhatsAppURL string
	Total       int64
	Order       models.CreateOrderInput
}

// Compose checks preconditions in order (name, phone, non-empty cart;
// first failure wins) and renders the message. No side effects: the
// caller persists Result.Order and hands Result.WhatsAppURL to the
// customer, independently.
func (cp *Composer) Compose(in CheckoutInput) (*CheckoutResult, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, ErrPhoneRequired
	}
	if in.Cart == nil || in.Cart.Empty() {
		return nil, ErrEmptyCart
	}

	// Captured once; the message, the deep link and the persisted
	// summary all use this value even if the cart mutates afterwards.
	total := in.Cart.Total()
	lines := in.Cart.Lines()

	var msg string
	if in.FitMeal {
		msg = fitMealMessage(lines, total)
	} else {
		msg = orderMessage(in.CustomerName, in.CustomerPhone, lines, total)
	}

	recipient := cp.pickRecipient(in.FitMeal)

	items := make([]models.OrderItemInput, len(lines))
	for i, l := range lines {
		items[i] = models.OrderItemInput{
			MenuItemID: l.ItemID,
			ItemName:   l.Name,
			UnitPrice:  l.Price,
			Quantity:   l.Qty,
		}
	}

	return &CheckoutResult{
		Message:     msg,
		Recipient:   recipient,
		WhatsAppURL: WhatsAppURL(recipient, msg),
		Total:       total,
		Order: models.CreateOrderInput{
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			CustomerEmail: in.CustomerEmail,
			TotalPrice:    total,
			Notes:         in.Notes,
			Items:         items,
		},
	}, nil
}

// pickRecipient rotates through the staff phones for the regular flow;
// the fit-meal flow has always gone to a single number.
func (cp *Composer) pickRecipient(fitMeal bool) string {
	if fitMeal || len(cp.orderRecipients) == 0 {
		return cp.fitRecipient
	}
	n := cp.next.Add(1) - 1
	return cp.orderRecipients[n%uint64(len(cp.orderRecipients))]
}

// orderMessage is a rendering contract: the café staff read these
// messages raw in WhatsApp, so the line shapes must not change.
func orderMessage(name, phone string, lines []CartLine, total int64) string {
	var b strings.Builder
	b.WriteString("*Novo Pedido - Café da Júlio*\n\n")
	b.WriteString("*Cliente:* " + name + "\n")
	b.WriteString("*Telefone:* " + phone + "\n\n")
	b.WriteString("*Itens do Pedido:*\n")
	for _, l := range lines {
		b.WriteString("• " + l.Name + " x" + strconv.Itoa(l.Qty) + " - " + FormatBRL(l.Subtotal()) + "\n")
	}
	b.WriteString("\n*Total:* " + FormatBRL(total) + "\n\n")
	b.WriteString("*Retirada:* " + pickupLocation + "\n")
	b.WriteString("*Observações:* Pedido realizado via site")
	return b.String()
}

func fitMealMessage(lines []CartLine, total int64) string {
	var b strings.Builder
	b.WriteString("*Novo Pedido Marmitas Fit - Café da Júlio*\n\n")
	b.WriteString("*Itens:*\n")
	for _, l := range lines {
		b.WriteString("• " + l.Name + " x" + strconv.Itoa(l.Qty) + " - " + FormatBRL(l.Subtotal()) + "\n")
	}
	b.WriteString("\n*Total:* " + FormatBRL(total) + "\n\n")
	b.WriteString("*Retirada:* " + pickupLocation)
	return b.String()
}

// WhatsAppURL embeds the message as the text query parameter, spaces as
// %20 (encodeURIComponent semantics, which wa.me expects).
func WhatsAppURL(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + EncodeMessage(message)
}

func EncodeMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

