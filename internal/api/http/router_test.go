package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/spec-kit/hotel-booking/internal/api/http"
	"github.com/spec-kit/hotel-booking/internal/api/http/handlers"
	"github.com/spec-kit/hotel-booking/internal/auth"
	"github.com/spec-kit/hotel-booking/internal/config"
	"github.com/spec-kit/hotel-booking/internal/domain"
	"github.com/spec-kit/hotel-booking/internal/observability"
	"github.com/spec-kit/hotel-booking/internal/repository"
	"github.com/spec-kit/hotel-booking/internal/service"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = "u-" + strconv.Itoa(m.nextID)
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) Update(_ context.Context, user *domain.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

type memHotelRepo struct {
	byID   map[string]*domain.Hotel
	nextID int
}

func (m *memHotelRepo) Create(_ context.Context, hotel *domain.Hotel) error {
	m.nextID++
	hotel.ID = "h-" + strconv.Itoa(m.nextID)
	stored := *hotel
	m.byID[hotel.ID] = &stored
	return nil
}

func (m *memHotelRepo) Update(_ context.Context, hotel *domain.Hotel) error {
	if _, ok := m.byID[hotel.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *hotel
	m.byID[hotel.ID] = &stored
	return nil
}

func (m *memHotelRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memHotelRepo) GetByID(_ context.Context, id string) (*domain.Hotel, error) {
	hotel, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *hotel
	return &copied, nil
}

func (m *memHotelRepo) List(_ context.Context) ([]domain.Hotel, error) {
	hotels := make([]domain.Hotel, 0, len(m.byID))
	for _, hotel := range m.byID {
		hotels = append(hotels, *hotel)
	}
	return hotels, nil
}

type testEnv struct {
	app    *fiber.App
	auth   *service.AuthService
	hotels *memHotelRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}}

	userRepo := &memUserRepo{byEmail: map[string]*domain.User{}}
	hotelRepo := &memHotelRepo{byID: map[string]*domain.Hotel{}}

	authService := service.NewAuthService(cfg, service.AuthDependencies{UserRepo: userRepo})
	hotelService := service.NewHotelService(service.HotelDependencies{HotelRepo: hotelRepo}, zap.NewNop())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Users:          handlers.NewUsersHandler(authService),
		Hotels:         handlers.NewHotelsHandler(hotelService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager()),
	})

	return &testEnv{app: app, auth: authService, hotels: hotelRepo}
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func (e *testEnv) register(t *testing.T, name, email, password, role string) (int, map[string]any) {
	t.Helper()
	return e.do(t, http.MethodPost, "/api/users/register", "", map[string]any{
		"name": name, "email": email, "password": password, "role": role,
	})
}

func (e *testEnv) loginToken(t *testing.T, email, password string) string {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return "Bearer " + token
}

var newHotelPayload = map[string]any{
	"name": "Hotel California", "location": "Los Angeles", "pricePerNight": 300,
}

func TestRegisterTwiceRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.register(t, "John Doe", "john@example.com", "pw", "user")
	require.Equal(t, http.StatusCreated, status)

	status, body := env.register(t, "John Doe", "john@example.com", "pw", "user")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User already exists", body["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "John Doe", "john@example.com", "password123", "user")

	status, body := env.do(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "john@example.com", "password": "wrongpassword",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestLoginSuccessReturnsDecodableToken(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Admin User", "admin@example.com", "password123", "admin")

	status, body := env.do(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "admin@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])

	claims, err := env.auth.TokenManager().Parse(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestHotelListingIsPublic(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/api/hotels", "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestHotelGetUnknownID(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodGet, "/api/hotels/999", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Hotel not found", body["message"])
}

func TestHotelCreateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodPost, "/api/hotels", "", newHotelPayload)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authorization token is missing or malformed", body["message"])
}

func TestHotelCreateRejectsMalformedHeader(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.do(t, http.MethodPost, "/api/hotels", "BearerMalformedToken", newHotelPayload)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Authorization token is missing or malformed", body["message"])
}

func TestHotelCreateRejectsNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "John Doe", "john@example.com", "pw", "user")
	token := env.loginToken(t, "john@example.com", "pw")

	status, body := env.do(t, http.MethodPost, "/api/hotels", token, newHotelPayload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden: You do not have the required role", body["message"])
}

func TestHotelAdminCRUD(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Admin User", "admin@example.com", "pw", "admin")
	token := env.loginToken(t, "admin@example.com", "pw")

	status, body := env.do(t, http.MethodPost, "/api/hotels", token, newHotelPayload)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Hotel created successfully", body["message"])
	hotel := body["hotel"].(map[string]any)
	assert.Equal(t, "Hotel California", hotel["name"])
	id := hotel["id"].(string)

	status, body = env.do(t, http.MethodPut, "/api/hotels/"+id, token, map[string]any{
		"name": "Hotel Sunrise", "location": "Orlando", "pricePerNight": 180,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hotel updated successfully", body["message"])

	status, body = env.do(t, http.MethodGet, "/api/hotels/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hotel Sunrise", body["name"])

	status, body = env.do(t, http.MethodDelete, "/api/hotels/"+id, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hotel deleted successfully", body["message"])

	status, _ = env.do(t, http.MethodGet, "/api/hotels/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHotelUpdateRejectsNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "John Doe", "john@example.com", "pw", "user")
	token := env.loginToken(t, "john@example.com", "pw")

	status, body := env.do(t, http.MethodPut, "/api/hotels/1", token, newHotelPayload)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden: You do not have the required role", body["message"])
}

func TestUserLookupIsAdminGated(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.register(t, "John Doe", "john@example.com", "pw", "user")
	require.Equal(t, http.StatusCreated, status)
	userID := body["user"].(map[string]any)["id"].(string)

	userToken := env.loginToken(t, "john@example.com", "pw")
	status, _ = env.do(t, http.MethodGet, "/api/users/"+userID, userToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	env.register(t, "Admin User", "admin@example.com", "pw", "admin")
	adminToken := env.loginToken(t, "admin@example.com", "pw")

	status, body = env.do(t, http.MethodGet, "/api/users/"+userID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "john@example.com", body["email"])
	assert.NotContains(t, body, "passwordHash")

	status, body = env.do(t, http.MethodGet, "/api/users/missing", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", body["message"])
}

func TestRegisterValidatesRole(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.register(t, "John Doe", "john@example.com", "pw", "superuser")
	assert.Equal(t, http.StatusBadRequest, status)
}
