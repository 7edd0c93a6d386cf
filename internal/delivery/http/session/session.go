// Package session keeps the request-scoped cookie session in the echo context.
//
// The middleware loads the session once per request; handlers read and mutate it
// through the helpers below, and every mutation is written back to the response
// cookie immediately so it lands before the body is flushed.
package session

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	contextKey = "session"
	userIDKey  = "user_id"
)

// Flash is a one-shot message shown to the user on the next session read.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func init() {
	gob.Register(Flash{})
}

// NewStore builds the cookie store. A missing key falls back to a random one,
// which invalidates sessions on every restart.
func NewStore(cfg *config.Config, logger *slog.Logger) sessions.Store {
	key := []byte(cfg.Session.Key)
	if len(key) == 0 {
		logger.Warn("session.key is empty, generating an ephemeral key")
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   cfg.Session.Domain,
		MaxAge:   cfg.Session.MaxAge,
		Secure:   cfg.Session.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

// Middleware loads the session for each request.
type Middleware struct {
	store sessions.Store
	name  string
}

// NewMiddleware creates the session loader.
func NewMiddleware(store sessions.Store, cfg *config.Config) *Middleware {
	return &Middleware{store: store, name: cfg.Session.Name}
}

// Load attaches the session to the echo context. A cookie that fails to decode
// yields a fresh session instead of an error.
func (m *Middleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.store.Get(c.Request(), m.name)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
				Debug("Discarding unreadable session cookie", slog.Any("error", err))
		}
		if sess == nil {
			sess = sessions.NewSession(m.store, m.name)
			sess.Options = &sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}
		}
		c.Set(contextKey, sess)

		return next(c)
	}
}

// Get returns the request session. It panics when the middleware is missing,
// which is a wiring bug.
func Get(c echo.Context) *sessions.Session {
	sess, ok := c.Get(contextKey).(*sessions.Session)
	if !ok {
		panic("session: middleware not installed")
	}

	return sess
}

// UserID returns the logged-in user, if any.
func UserID(c echo.Context) (uuid.UUID, bool) {
	raw, ok := Get(c).Values[userIDKey].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// Login marks the session as authenticated for userID.
func Login(c echo.Context, userID uuid.UUID) error {
	sess := Get(c)
	sess.Values[userIDKey] = userID.String()

	return save(c, sess)
}

// Logout expires the session cookie.
func Logout(c echo.Context) error {
	sess := Get(c)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	opts := *sess.Options
	opts.MaxAge = -1
	sess.Options = &opts

	return save(c, sess)
}

// AddFlash queues a one-shot message.
func AddFlash(c echo.Context, kind, message string) error {
	sess := Get(c)
	sess.AddFlash(Flash{Kind: kind, Message: message})

	return save(c, sess)
}

// Flashes drains the queued messages.
func Flashes(c echo.Context) ([]Flash, error) {
	sess := Get(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return []Flash{}, nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}

	return flashes, save(c, sess)
}

func save(c echo.Context, sess *sessions.Session) error {
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return errors.Wrap(err, "save session")
	}

	return nil
}
