// Package handler contains the HTTP handlers for the application.
package handler

import (
	"path"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Requests ---

type signupRequest struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type resetRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type newPasswordRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

type cartRequest struct {
	ProductID string `json:"productId" form:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" form:"quantity" validate:"omitempty,min=1"`
}

type createOrderRequest struct {
	SessionID string `json:"sessionId" form:"sessionId" query:"session_id" validate:"required"`
}

// --- Responses ---

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func toUserResponse(u *entity.User) *userResponse {
	if u == nil {
		return nil
	}

	return &userResponse{ID: u.ID, Email: u.Email}
}

// productFormResponse describes the fields the add-product form submits.
type productFormResponse struct {
	Fields         []string `json:"fields"`
	ImageField     string   `json:"imageField"`
	ImageTypes     []string `json:"imageTypes"`
	MaxUploadBytes int64    `json:"maxUploadBytes"`
	MaxUploadSize  string   `json:"maxUploadSize"`
}

type productResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	UserID      uuid.UUID       `json:"userId"`
}

// imageURL maps a storage key such as images/<uuid>.jpg to its public path.
func imageURL(key string) string {
	if key == "" {
		return ""
	}

	return "/images/" + path.Base(key)
}

func toProductResponse(p *entity.Product) *productResponse {
	return &productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    imageURL(p.ImageKey),
		UserID:      p.UserID,
	}
}

func toProductResponses(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

type productPageResponse struct {
	Products   []*productResponse `json:"products"`
	Pagination entity.Pagination  `json:"pagination"`
}

func toProductPageResponse(page *usecase.ProductPage) *productPageResponse {
	return &productPageResponse{
		Products:   toProductResponses(page.Products),
		Pagination: page.Pagination,
	}
}

type cartLineResponse struct {
	Product  *productResponse `json:"product"`
	Quantity int              `json:"quantity"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

func toCartResponse(view *entity.CartView) *cartResponse {
	lines := make([]cartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		lines = append(lines, cartLineResponse{
			Product:  toProductResponse(line.Product),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
	}

	return &cartResponse{Lines: lines, Total: view.Total}
}

type checkoutResponse struct {
	Cart        *cartResponse `json:"cart"`
	TotalMinor  int64         `json:"totalMinor"`
	Currency    string        `json:"currency"`
	SessionID   string        `json:"sessionId"`
	RedirectURL string        `json:"redirectUrl"`
}

func toCheckoutResponse(q *usecase.CheckoutQuote) *checkoutResponse {
	return &checkoutResponse{
		Cart:        toCartResponse(q.Cart),
		TotalMinor:  q.TotalMinor,
		Currency:    q.Currency,
		SessionID:   q.SessionID,
		RedirectURL: q.RedirectURL,
	}
}

type orderLineResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type orderResponse struct {
	ID         uuid.UUID           `json:"id"`
	Status     entity.OrderStatus  `json:"status"`
	Email      string              `json:"email"`
	Lines      []orderLineResponse `json:"lines"`
	Total      decimal.Decimal     `json:"total"`
	InvoiceURL string              `json:"invoiceUrl"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func toOrderResponse(o *entity.Order) *orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLineResponse{
			ProductID:   l.ProductID,
			Title:       l.Title,
			Description: l.Description,
			Price:       l.Price,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal(),
		})
	}

	return &orderResponse{
		ID:         o.ID,
		Status:     o.Status,
		Email:      o.Owner.Email,
		Lines:      lines,
		Total:      o.Total(),
		InvoiceURL: "/orders/" + o.ID.String(),
		CreatedAt:  o.CreatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*orderResponse {
	out := make([]*orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return out
}
