package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/config"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/logger"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

type httpChatAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPChatAdapter constructs the REST implementation of
// [ChatServerAdapter] against cfg.HTTPAddress. Every request carries a
// fresh X-Trace-Id header so client logs can be correlated with backend
// logs.
func NewHTTPChatAdapter(cfg config.ClientAdapter, log *logger.Logger) ChatServerAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(timeout)

	a := &httpChatAdapter{client: cli, log: log}

	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Trace-Id", uuid.NewString())
		if token := a.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return a
}

func (a *httpChatAdapter) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = strings.TrimSpace(token)
}

func (a *httpChatAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *httpChatAdapter) Login(ctx context.Context, email, password string) (int64, error) {
	var body struct {
		Token string `json:"token"`
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&body).
		Post("/api/auth/login/")
	if err != nil {
		return 0, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	userID, err := parseUserIDFromJWT(body.Token)
	if err != nil {
		return 0, fmt.Errorf("login parse user id: %w", err)
	}

	a.SetToken(body.Token)
	return userID, nil
}

func (a *httpChatAdapter) FetchRoomMessages(ctx context.Context, roomID int64) ([]models.Message, error) {
	var messages []models.Message

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&messages).
		Get(fmt.Sprintf("/api/chat/rooms/%d/messages/", roomID))
	if err != nil {
		return nil, fmt.Errorf("fetch room messages: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

func (a *httpChatAdapter) SendMessage(ctx context.Context, roomID int64, payload models.EncryptedPayload) (models.Message, error) {
	var message models.Message

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&message).
		Post(fmt.Sprintf("/api/chat/rooms/%d/messages/", roomID))
	if err != nil {
		return models.Message{}, fmt.Errorf("send message: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// mapHTTPError translates a non-2xx response into one of the package
// sentinel errors, preserving the response body for diagnostics.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrServerUnavailable
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode())
	}
	return fmt.Errorf("%w: status %d: %s", sentinel, resp.StatusCode(), body)
}

// parseUserIDFromJWT extracts the user_id claim without verifying the
// signature: the token is opaque client-side and only the backend verifies
// it; the claim is needed purely to scope local state.
func parseUserIDFromJWT(token string) (int64, error) {
	if token == "" {
		return 0, errors.New("empty token")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}

	raw, ok := claims["user_id"]
	if !ok {
		return 0, errors.New("token has no user_id claim")
	}
	id, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected user_id claim type %T", raw)
	}

	return int64(id), nil
}
