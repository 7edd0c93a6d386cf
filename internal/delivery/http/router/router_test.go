package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/session"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e          *echo.Echo
	authUC     *mockUsecase.MockAuthUsecase
	catalogUC  *mockUsecase.MockCatalogUsecase
	cartUC     *mockUsecase.MockCartUsecase
	checkoutUC *mockUsecase.MockCheckoutUsecase
	orderUC    *mockUsecase.MockOrderUsecase
	user       *entity.User
	cookies    []*http.Cookie
}

type envelope struct {
	Success bool            `json:"success"`
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Session.Name = "test_session"
	cfg.Session.Key = "0123456789abcdef0123456789abcdef"
	cfg.Catalog.MaxUploadSize = 1 << 20

	ts := &testServer{
		authUC:     mockUsecase.NewMockAuthUsecase(t),
		catalogUC:  mockUsecase.NewMockCatalogUsecase(t),
		cartUC:     mockUsecase.NewMockCartUsecase(t),
		checkoutUC: mockUsecase.NewMockCheckoutUsecase(t),
		orderUC:    mockUsecase.NewMockOrderUsecase(t),
		user:       &entity.User{ID: uuid.New(), Email: "buyer@example.com"},
	}

	e := echo.New()
	errorMiddleware := middleware.NewErrorMiddleware(middleware.ErrorMiddlewareParams{Logger: logger, Config: cfg})
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	e.Validator = validator.New()
	e.Use(errorMiddleware.Recover())
	e.Use(session.NewMiddleware(session.NewStore(cfg, logger), cfg).Load)
	e.Use(middleware.NewCSRFMiddleware(cfg, logger).Handle)

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(ts.authUC, logger),
		ShopHandler:     handler.NewShopHandler(ts.catalogUC),
		AdminHandler:    handler.NewAdminHandler(ts.catalogUC, cfg),
		CartHandler:     handler.NewCartHandler(ts.cartUC),
		CheckoutHandler: handler.NewCheckoutHandler(ts.checkoutUC, ts.cartUC, logger),
		OrderHandler:    handler.NewOrderHandler(ts.orderUC, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(ts.authUC),
	}).RegisterRoutes(e)
	ts.e = e

	return ts
}

// login posts credentials and keeps the session cookie for later requests.
func (ts *testServer) login(t *testing.T) {
	ts.authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: ts.user.Email, Password: "secret"}).
		Return(ts.user, nil).Once()
	ts.authUC.EXPECT().GetUser(mock.Anything, ts.user.ID).Return(ts.user, nil).Maybe()

	rec := ts.do(t, http.MethodPost, "/login", `{"email":"buyer@example.com","password":"secret"}`, echo.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	ts.cookies = rec.Result().Cookies()
	require.NotEmpty(t, ts.cookies)
}

func (ts *testServer) do(t *testing.T, method, target, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	for _, ck := range ts.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRoutes_Health(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)
}

func TestRoutes_Catalog(t *testing.T) {
	product := &entity.Product{
		ID:       uuid.New(),
		Title:    "Mug",
		Price:    decimal.RequireFromString("12.50"),
		ImageKey: "images/abc.jpg",
	}

	t.Run("index is page one", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().ListProducts(mock.Anything, 1).Return(&usecase.ProductPage{
			Products:   []*entity.Product{product},
			Pagination: entity.NewPagination(1, 2, 1),
		}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"imageUrl":"/images/abc.jpg"`)
		assert.Contains(t, rec.Body.String(), `"price":"12.5"`)
	})

	t.Run("bad page falls back to one", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().ListProducts(mock.Anything, 1).Return(&usecase.ProductPage{}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/products?page=abc", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("second page", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().ListProducts(mock.Anything, 2).Return(&usecase.ProductPage{}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/products?page=2", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed product id is not found", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodGet, "/products/not-a-uuid", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "fail", decode(t, rec).Status)
	})

	t.Run("image is streamed", func(t *testing.T) {
		ts := newTestServer(t)
		ts.catalogUC.EXPECT().OpenImage(mock.Anything, "abc.jpg").
			Return(io.NopCloser(strings.NewReader("jpeg-bytes")), "image/jpeg", nil).Once()

		rec := ts.do(t, http.MethodGet, "/images/abc.jpg", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "jpeg-bytes", rec.Body.String())
	})
}

func TestRoutes_Auth(t *testing.T) {
	t.Run("signup validates email", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/signup", `{"email":"nope","password":"secret","confirmPassword":"secret"}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body is bad request", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(t, http.MethodPost, "/signup", `{"email":`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("signup accepts form encoding", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().Signup(mock.Anything, usecase.SignupInput{
			Email: "new@example.com", Password: "secret", ConfirmPassword: "secret",
		}).Return(&entity.User{ID: uuid.New(), Email: "new@example.com"}, nil).Once()

		form := url.Values{"email": {"new@example.com"}, "password": {"secret"}, "confirmPassword": {"secret"}}
		rec := ts.do(t, http.MethodPost, "/signup", form.Encode(), echo.MIMEApplicationForm)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("failed login leaves a one-shot flash", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		rec := ts.do(t, http.MethodPost, "/login", `{"email":"buyer@example.com","password":"wrong"}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		ts.cookies = rec.Result().Cookies()

		rec = ts.do(t, http.MethodGet, "/session", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)
		ts.cookies = rec.Result().Cookies()

		rec = ts.do(t, http.MethodGet, "/session", "", "")
		assert.NotContains(t, rec.Body.String(), "Invalid email or password")
	})

	t.Run("session reports logged-in user", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)

		rec := ts.do(t, http.MethodGet, "/session", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":true`)
		assert.Contains(t, rec.Body.String(), ts.user.Email)
	})

	t.Run("new password passes token", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().ResetPassword(mock.Anything, usecase.ResetPasswordInput{Token: "tok", Password: "newpass"}).
			Return(nil).Once()

		rec := ts.do(t, http.MethodPost, "/new-password/tok", `{"password":"newpass"}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reset always succeeds", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().RequestPasswordReset(mock.Anything, "ghost@example.com").Return(nil).Once()

		rec := ts.do(t, http.MethodPost, "/reset", `{"email":"ghost@example.com"}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoutes_RequireLogin(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/cart", "/orders", "/checkout", "/admin/products", "/admin/add-product"} {
		rec := ts.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRoutes_Cart(t *testing.T) {
	productID := uuid.New()
	emptyView := entity.NewCartView(nil)

	t.Run("add defaults quantity to one", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.cartUC.EXPECT().AddToCart(mock.Anything, ts.user.ID, productID, 1).Return(nil).Once()
		ts.cartUC.EXPECT().GetCart(mock.Anything, ts.user.ID).Return(emptyView, nil).Once()

		rec := ts.do(t, http.MethodPost, "/cart", `{"productId":"`+productID.String()+`"}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.cartUC.EXPECT().AddToCart(mock.Anything, ts.user.ID, productID, 3).Return(domainerrors.ErrProductNotFound).Once()

		rec := ts.do(t, http.MethodPost, "/cart", `{"productId":"`+productID.String()+`","quantity":3}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)

		rec := ts.do(t, http.MethodPost, "/cart", `{"productId":"`+productID.String()+`","quantity":-1}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("remove item", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.cartUC.EXPECT().RemoveFromCart(mock.Anything, ts.user.ID, productID).Return(nil).Once()
		ts.cartUC.EXPECT().GetCart(mock.Anything, ts.user.ID).Return(emptyView, nil).Once()

		form := url.Values{"productId": {productID.String()}}
		rec := ts.do(t, http.MethodPost, "/cart-delete-item", form.Encode(), echo.MIMEApplicationForm)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoutes_Checkout(t *testing.T) {
	order := &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusFinalized,
		Lines: []entity.OrderLine{{
			ProductID: uuid.New(), Title: "Mug", Price: decimal.NewFromInt(10), Quantity: 2,
		}},
	}

	t.Run("begin returns redirect", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.checkoutUC.EXPECT().BeginCheckout(mock.Anything, ts.user.ID).Return(&usecase.CheckoutQuote{
			Cart:        entity.NewCartView(nil),
			TotalMinor:  2000,
			Currency:    "usd",
			SessionID:   "cs_1",
			RedirectURL: "https://pay.example/cs_1",
		}, nil).Once()

		rec := ts.do(t, http.MethodGet, "/checkout", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"redirectUrl":"https://pay.example/cs_1"`)
		assert.Contains(t, rec.Body.String(), `"totalMinor":2000`)
	})

	t.Run("empty cart", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.checkoutUC.EXPECT().BeginCheckout(mock.Anything, ts.user.ID).Return(nil, domainerrors.ErrEmptyCart).Once()

		rec := ts.do(t, http.MethodGet, "/checkout", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMPTY_CART", decode(t, rec).Error.Code)
	})

	t.Run("success finalizes session", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.checkoutUC.EXPECT().FinalizeOrder(mock.Anything, ts.user.ID, "cs_1").Return(order, nil).Once()

		rec := ts.do(t, http.MethodGet, "/checkout/success?session_id=cs_1", "", "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":"20"`)
	})

	t.Run("unpaid session", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.checkoutUC.EXPECT().FinalizeOrder(mock.Anything, ts.user.ID, "cs_2").Return(nil, domainerrors.ErrPaymentNotConfirmed).Once()

		rec := ts.do(t, http.MethodPost, "/create-order", `{"sessionId":"cs_2"}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("create order requires session id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)

		rec := ts.do(t, http.MethodPost, "/create-order", `{}`, echo.MIMEApplicationJSON)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("cancel returns cart", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.cartUC.EXPECT().GetCart(mock.Anything, ts.user.ID).Return(entity.NewCartView(nil), nil).Once()

		rec := ts.do(t, http.MethodGet, "/checkout/cancel", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoutes_Invoice(t *testing.T) {
	orderID := uuid.New()

	t.Run("streams pdf inline", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		order := &entity.Order{ID: orderID, Owner: entity.OrderOwner{UserID: ts.user.ID}}
		ts.orderUC.EXPECT().GetOrderForUser(mock.Anything, ts.user.ID, orderID).Return(order, nil).Once()
		ts.orderUC.EXPECT().StreamInvoice(mock.Anything, order, mock.Anything).
			RunAndReturn(func(_ context.Context, _ *entity.Order, w io.Writer) error {
				_, err := w.Write([]byte("%PDF-1.3"))

				return err
			}).Once()

		rec := ts.do(t, http.MethodGet, "/orders/"+orderID.String(), "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `inline; filename="invoice-`+orderID.String()+`.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("other owner is forbidden", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.orderUC.EXPECT().GetOrderForUser(mock.Anything, ts.user.ID, orderID).Return(nil, domainerrors.ErrOrderForbidden).Once()

		rec := ts.do(t, http.MethodGet, "/orders/"+orderID.String(), "", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing order", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.orderUC.EXPECT().GetOrderForUser(mock.Anything, ts.user.ID, orderID).Return(nil, domainerrors.ErrOrderNotFound).Once()

		rec := ts.do(t, http.MethodGet, "/orders/"+orderID.String(), "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func multipartBody(t *testing.T, fields map[string]string, image []byte) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="image"; filename="mug.png"`}
		header["Content-Type"] = []string{"image/png"}
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf.String(), w.FormDataContentType()
}

func TestRoutes_Admin(t *testing.T) {
	fields := map[string]string{"title": "Mug", "price": "12.99", "description": "A nice mug"}

	t.Run("add product form", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)

		rec := ts.do(t, http.MethodGet, "/admin/add-product", "", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var form struct {
			Fields         []string `json:"fields"`
			ImageField     string   `json:"imageField"`
			MaxUploadBytes int64    `json:"maxUploadBytes"`
			MaxUploadSize  string   `json:"maxUploadSize"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &form))
		assert.Equal(t, []string{"title", "price", "description"}, form.Fields)
		assert.Equal(t, "image", form.ImageField)
		assert.Equal(t, int64(1<<20), form.MaxUploadBytes)
		assert.Equal(t, "1.0 MB", form.MaxUploadSize)
	})

	t.Run("add product with image", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.catalogUC.EXPECT().CreateProduct(mock.Anything, ts.user.ID,
			mock.MatchedBy(func(in usecase.ProductInput) bool {
				return in.Title == "Mug" && in.Description == "A nice mug" && in.Price.Equal(decimal.RequireFromString("12.99"))
			}),
			mock.MatchedBy(func(img *usecase.ImageUpload) bool {
				return img != nil && img.Filename == "mug.png" && img.ContentType == "image/png"
			}),
		).Return(&entity.Product{ID: uuid.New(), Title: "Mug", UserID: ts.user.ID}, nil).Once()

		body, contentType := multipartBody(t, fields, []byte("png-bytes"))
		rec := ts.do(t, http.MethodPost, "/admin/add-product", body, contentType)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("add product without image", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		ts.catalogUC.EXPECT().CreateProduct(mock.Anything, ts.user.ID, mock.Anything, (*usecase.ImageUpload)(nil)).
			Return(nil, domainerrors.ErrImageRequired).Once()

		body, contentType := multipartBody(t, fields, nil)
		rec := ts.do(t, http.MethodPost, "/admin/add-product", body, contentType)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "IMAGE_REQUIRED", decode(t, rec).Error.Code)
	})

	t.Run("oversized image", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)

		body, contentType := multipartBody(t, fields, bytes.Repeat([]byte{0xff}, 1<<20+1))
		rec := ts.do(t, http.MethodPost, "/admin/add-product", body, contentType)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "image exceeds 1.0 MB", decode(t, rec).Error.Details)
	})

	t.Run("invalid price", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)

		body, contentType := multipartBody(t, map[string]string{"title": "Mug", "price": "cheap"}, []byte("png-bytes"))
		rec := ts.do(t, http.MethodPost, "/admin/add-product", body, contentType)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("edit other owner's product", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		productID := uuid.New()
		ts.catalogUC.EXPECT().UpdateProduct(mock.Anything, ts.user.ID, productID, mock.Anything, (*usecase.ImageUpload)(nil)).
			Return(nil, domainerrors.ErrProductNotFound).Once()

		editFields := map[string]string{"productId": productID.String(), "title": "Mug", "price": "1", "description": "A nice mug"}
		body, contentType := multipartBody(t, editFields, nil)
		rec := ts.do(t, http.MethodPost, "/admin/edit-product", body, contentType)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete product", func(t *testing.T) {
		ts := newTestServer(t)
		ts.login(t)
		productID := uuid.New()
		ts.catalogUC.EXPECT().DeleteProduct(mock.Anything, ts.user.ID, productID).Return(nil).Once()

		rec := ts.do(t, http.MethodDelete, "/admin/product/"+productID.String(), "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
