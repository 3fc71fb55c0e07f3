package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/thepitchdeck/pitchdeck-api/internal/auth"
	"github.com/thepitchdeck/pitchdeck-api/internal/model"
	"github.com/thepitchdeck/pitchdeck-api/internal/repository"
	"github.com/thepitchdeck/pitchdeck-api/internal/usecase"
	"github.com/thepitchdeck/pitchdeck-api/internal/validation"
)

const testSecret = "test-secret"

// mockAuthUsecase delegates each method to an optional fn field.
type mockAuthUsecase struct {
	signUpFn          func(ctx context.Context, params usecase.SignUpParams) (*model.User, error)
	loginFn           func(ctx context.Context, params usecase.LoginParams) (*model.User, error)
	currentUserFn     func(ctx context.Context, userID string) (*model.User, error)
	toggleFavouriteFn func(ctx context.Context, userID, competitionID string) ([]string, error)
	listFavouritesFn  func(ctx context.Context, userID string) ([]model.Competition, error)
}

func (m *mockAuthUsecase) SignUp(ctx context.Context, params usecase.SignUpParams) (*model.User, error) {
	return m.signUpFn(ctx, params)
}

func (m *mockAuthUsecase) Login(ctx context.Context, params usecase.LoginParams) (*model.User, error) {
	return m.loginFn(ctx, params)
}

func (m *mockAuthUsecase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return m.currentUserFn(ctx, userID)
}

func (m *mockAuthUsecase) ToggleFavourite(ctx context.Context, userID, competitionID string) ([]string, error) {
	return m.toggleFavouriteFn(ctx, userID, competitionID)
}

func (m *mockAuthUsecase) ListFavourites(ctx context.Context, userID string) ([]model.Competition, error) {
	return m.listFavouritesFn(ctx, userID)
}

func newTestHandler(t *testing.T, authUsecase usecase.AuthUsecase, competitions usecase.CompetitionUsecase, opts Options) http.Handler {
	t.Helper()

	validate, err := validation.New()
	require.NoError(t, err)

	logger := zerolog.Nop()
	h := NewHandler(authUsecase, competitions, auth.NewTokenAuthenticator(testSecret), validate, &logger, opts)

	return h.Routes()
}

func sessionCookie(t *testing.T, userID, email string) *http.Cookie {
	t.Helper()

	tokens := auth.NewTokenAuthenticator(testSecret)
	token, err := tokens.Issue(userID, email)
	require.NoError(t, err)

	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func validSignUpBody() string {
	return `{
		"firstName": "A",
		"lastName": "B",
		"email": "a@b.com",
		"password": "secret1",
		"role": "competitor",
		"school": "X",
		"grade": "11"
	}`
}

func TestSignup(t *testing.T) {
	mock := &mockAuthUsecase{
		signUpFn: func(_ context.Context, params usecase.SignUpParams) (*model.User, error) {
			assert.Equal(t, "a@b.com", params.Email)
			return &model.User{ID: bson.NewObjectID(), Email: params.Email}, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(validSignUpBody())))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"message": "User created successfully"}, decodeBody(t, rec))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	mock := &mockAuthUsecase{
		signUpFn: func(_ context.Context, _ usecase.SignUpParams) (*model.User, error) {
			return nil, usecase.ErrUserAlreadyExists
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(validSignUpBody())))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"message": "User already exists"}, decodeBody(t, rec))
}

func TestSignup_ValidationRunsBeforeStore(t *testing.T) {
	mock := &mockAuthUsecase{
		signUpFn: func(_ context.Context, _ usecase.SignUpParams) (*model.User, error) {
			t.Fatal("store reached with an invalid payload")
			return nil, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	body := `{"firstName": "A", "lastName": "B", "email": "not-an-email", "password": "secret1", "role": "competitor", "school": "X", "grade": "11"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "email")
}

func TestSignup_InvalidJSON(t *testing.T) {
	router := newTestHandler(t, &mockAuthUsecase{}, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"message": "Invalid JSON"}, decodeBody(t, rec))
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	userID := bson.NewObjectID()
	mock := &mockAuthUsecase{
		loginFn: func(_ context.Context, params usecase.LoginParams) (*model.User, error) {
			return &model.User{ID: userID, Email: params.Email, Favourites: []string{}}, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	body := `{"email": "a@b.com", "password": "secret1"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, auth.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 604800, cookie.MaxAge)

	// The issued token round-trips through the verifier.
	tokens := auth.NewTokenAuthenticator(testSecret)
	claims, err := tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), claims.UserID)

	respBody := decodeBody(t, rec)
	assert.Equal(t, "Login successful", respBody["message"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	mock := &mockAuthUsecase{
		loginFn: func(_ context.Context, params usecase.LoginParams) (*model.User, error) {
			return &model.User{ID: bson.NewObjectID(), Email: params.Email}, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{SecureCookies: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "a@b.com", "password": "secret1"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.True(t, rec.Result().Cookies()[0].Secure)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mock := &mockAuthUsecase{
		loginFn: func(_ context.Context, _ usecase.LoginParams) (*model.User, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "a@b.com", "password": "wrong-pass"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"message": "Invalid credentials"}, decodeBody(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout_ClearsCookie(t *testing.T) {
	router := newTestHandler(t, &mockAuthUsecase{}, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"message": "Logged out"}, decodeBody(t, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMe(t *testing.T) {
	userID := bson.NewObjectID()
	mock := &mockAuthUsecase{
		currentUserFn: func(_ context.Context, id string) (*model.User, error) {
			assert.Equal(t, userID.Hex(), id)
			return &model.User{ID: userID, Email: "a@b.com", Favourites: []string{"c1"}}, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(sessionCookie(t, userID.Hex(), "a@b.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestMe_NoCookie(t *testing.T) {
	router := newTestHandler(t, &mockAuthUsecase{}, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]any{"message": "Not authenticated"}, decodeBody(t, rec))
}

func TestMe_InvalidToken(t *testing.T) {
	router := newTestHandler(t, &mockAuthUsecase{}, nil, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, map[string]any{"message": "Invalid or expired token"}, decodeBody(t, rec))
}

func TestMe_UserDeleted(t *testing.T) {
	mock := &mockAuthUsecase{
		currentUserFn: func(_ context.Context, _ string) (*model.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(sessionCookie(t, bson.NewObjectID().Hex(), "a@b.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"message": "User not found"}, decodeBody(t, rec))
}

func TestToggleFavourite(t *testing.T) {
	userID := bson.NewObjectID()
	mock := &mockAuthUsecase{
		toggleFavouriteFn: func(_ context.Context, id, competitionID string) ([]string, error) {
			assert.Equal(t, userID.Hex(), id)
			assert.Equal(t, "c1", competitionID)
			return []string{"c1"}, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/favourites",
		strings.NewReader(`{"competitionId": "c1"}`))
	req.AddCookie(sessionCookie(t, userID.Hex(), "a@b.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"favourites": []any{"c1"}}, decodeBody(t, rec))
}

func TestToggleFavourite_MissingCompetitionID(t *testing.T) {
	router := newTestHandler(t, &mockAuthUsecase{}, nil, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/favourites", strings.NewReader(`{}`))
	req.AddCookie(sessionCookie(t, bson.NewObjectID().Hex(), "a@b.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"message": "Competition ID required"}, decodeBody(t, rec))
}

func TestListFavourites(t *testing.T) {
	mock := &mockAuthUsecase{
		listFavouritesFn: func(_ context.Context, _ string) ([]model.Competition, error) {
			return []model.Competition{{ID: "c1", Title: "Pitch It"}}, nil
		},
	}
	router := newTestHandler(t, mock, nil, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/favourites", nil)
	req.AddCookie(sessionCookie(t, bson.NewObjectID().Hex(), "a@b.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	favourites, ok := body["favourites"].([]any)
	require.True(t, ok)
	require.Len(t, favourites, 1)
}

func TestAuthEndpoints_WithoutCredentialStore(t *testing.T) {
	// A nil auth usecase models the server running without MongoDB.
	router := newTestHandler(t, nil, nil, Options{})

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/auth/signup", validSignUpBody()},
		{http.MethodPost, "/api/auth/login", `{"email": "a@b.com", "password": "secret1"}`},
		{http.MethodGet, "/api/auth/me", ""},
		{http.MethodPost, "/api/auth/favourites", `{"competitionId": "c1"}`},
		{http.MethodGet, "/api/auth/favourites", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			req.AddCookie(sessionCookie(t, bson.NewObjectID().Hex(), "a@b.com"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Equal(t, map[string]any{"message": "Service unavailable"}, decodeBody(t, rec))
		})
	}
}

func TestLogout_WorksWithoutCredentialStore(t *testing.T) {
	router := newTestHandler(t, nil, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestHandler(t, &mockAuthUsecase{}, nil, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}
