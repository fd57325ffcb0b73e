package artsy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// Credential — XAPP-токен каталога вместе со сроком его действия
// (unix-секунды). Токен считается живым, пока срок строго в будущем.
type Credential struct {
	Token      string `json:"token"`
	Expiration int64  `json:"expiration"`
}

// Valid сообщает, действителен ли токен в момент now.
func (c Credential) Valid(now time.Time) bool {
	return c.Token != "" && c.Expiration > now.Unix()
}

// CredentialStore — долговременное хранилище токена между перезапусками.
type CredentialStore interface {
	Load() (Credential, error)
	Save(Credential) error
}

// FileStore хранит токен в JSON-файле.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (Credential, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Credential{}, fmt.Errorf("read token file: %w", err)
	}
	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return Credential{}, fmt.Errorf("parse token file: %w", err)
	}
	return cred, nil
}

func (s FileStore) Save(cred Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// TokenSource выдает действующий XAPP-токен, прозрачно обновляя его
// у каталога по истечении срока. Безопасен для конкурентного использования.
type TokenSource struct {
	mu   sync.Mutex
	cred Credential

	store        CredentialStore
	client       *http.Client
	log          *slog.Logger
	now          func() time.Time
	authURL      string
	clientID     string
	clientSecret string
}

// TokenSourceOption настраивает TokenSource.
type TokenSourceOption func(*TokenSource)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) TokenSourceOption {
	return func(ts *TokenSource) {
		ts.now = now
	}
}

// WithHTTPClient подменяет HTTP-клиент.
func WithHTTPClient(c *http.Client) TokenSourceOption {
	return func(ts *TokenSource) {
		ts.client = c
	}
}

// NewTokenSource создает источник токена. Сохраненный токен подхватывается
// из store, если он еще действителен; ошибка чтения не фатальна.
func NewTokenSource(baseURL, clientID, clientSecret string, store CredentialStore, log *slog.Logger, opts ...TokenSourceOption) *TokenSource {
	ts := &TokenSource{
		store:        store,
		client:       &http.Client{Timeout: 15 * time.Second},
		log:          log,
		now:          time.Now,
		authURL:      baseURL + "/tokens/xapp_token",
		clientID:     clientID,
		clientSecret: clientSecret,
	}
	for _, opt := range opts {
		opt(ts)
	}

	if store != nil {
		cred, err := store.Load()
		if err != nil {
			ts.log.Debug("no stored catalog token", slog.String("error", err.Error()))
		} else if cred.Valid(ts.now()) {
			ts.cred = cred
		}
	}
	return ts
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Token возвращает действующий токен, при необходимости запрашивая новый.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.cred.Valid(ts.now()) {
		return ts.cred.Token, nil
	}

	cred, err := ts.fetch(ctx)
	if err != nil {
		return "", err
	}
	ts.cred = cred

	if ts.store != nil {
		if err := ts.store.Save(cred); err != nil {
			ts.log.Warn("failed to persist catalog token", slog.String("error", err.Error()))
		}
	}
	return cred.Token, nil
}

func (ts *TokenSource) fetch(ctx context.Context) (Credential, error) {
	body, err := json.Marshal(tokenRequest{ClientID: ts.clientID, ClientSecret: ts.clientSecret})
	if err != nil {
		return Credential{}, fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.authURL, bytes.NewReader(body))
	if err != nil {
		return Credential{}, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.client.Do(req)
	if err != nil {
		return Credential{}, fmt.Errorf("request catalog token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return Credential{}, &UpstreamError{Op: "token", StatusCode: resp.StatusCode}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return Credential{}, fmt.Errorf("decode token response: %w", err)
	}

	ts.log.Info("obtained new catalog token",
		slog.Time("expires_at", tr.ExpiresAt),
	)
	return Credential{Token: tr.Token, Expiration: tr.ExpiresAt.Unix()}, nil
}
