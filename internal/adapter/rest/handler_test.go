package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/rest/middleware"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/usecase"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	e       *echo.Echo
	motels  *mockMotelRepository
	users   *mockUserRepository
	storage *mockPhotoStorage
	cache   *mockMotelCache
}

// newTestEnv wires the full router over mocked persistence. The cache mock
// starts as an always-missing pass-through; the publisher stays nil, which
// the adapter treats as a no-op.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := logger.Discard()
	motels := new(mockMotelRepository)
	users := new(mockUserRepository)
	storage := new(mockPhotoStorage)

	motelCache := new(mockMotelCache)
	motelCache.On("GetMotel", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	motelCache.On("SetMotel", mock.Anything, mock.Anything).Return(nil).Maybe()
	motelCache.On("DeleteMotel", mock.Anything, mock.Anything).Return(nil).Maybe()
	motelCache.On("GetApproved", mock.Anything).Return(nil, nil).Maybe()
	motelCache.On("SetApproved", mock.Anything, mock.Anything).Return(nil).Maybe()
	motelCache.On("InvalidateApproved", mock.Anything).Return(nil).Maybe()

	motelUC := usecase.NewMotelUsecase(motels, users, storage, nil, log)
	photoUC := usecase.NewPhotoUsecase(motels, users, storage, log)
	userUC := usecase.NewUserUsecase(users, log)

	e := echo.New()
	Register(e, testSecret, log,
		NewMotelHandler(motelUC, photoUC, motelCache, nil, log),
		NewPhotoHandler(photoUC, motelCache, nil, log),
		NewUserHandler(userUC, log),
	)
	return &testEnv{e: e, motels: motels, users: users, storage: storage, cache: motelCache}
}

func signToken(t *testing.T, subject, name, email string) string {
	t.Helper()
	claims := middleware.IdentityClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) knownUser(subject string, role domain.Role) {
	env.users.On("FindBySubject", mock.Anything, domain.UserID(subject)).
		Return(&domain.User{Subject: domain.UserID(subject), Role: role, Email: subject + "@example.com"}, nil)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicDirectory(t *testing.T) {
	t.Run("ranked nearest first when the caller shares a location", func(t *testing.T) {
		env := newTestEnv(t)
		far := &domain.Motel{ID: "far", Status: domain.StatusApproved, Location: domain.Location{Lat: 40, Lng: 40}}
		near := &domain.Motel{ID: "near", Status: domain.StatusApproved, Location: domain.Location{Lat: 1, Lng: 1}}
		env.motels.On("FindByStatus", mock.Anything, domain.StatusApproved).Return([]*domain.Motel{far, near}, nil)

		rec := env.do(http.MethodGet, "/api/motels?lat=0&lng=0", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "near", got[0].ID)
		assert.Equal(t, "far", got[1].ID)
	})

	t.Run("native order without coordinates", func(t *testing.T) {
		env := newTestEnv(t)
		first := &domain.Motel{ID: "first", Status: domain.StatusApproved, Location: domain.Location{Lat: 40, Lng: 40}}
		second := &domain.Motel{ID: "second", Status: domain.StatusApproved, Location: domain.Location{Lat: 1, Lng: 1}}
		env.motels.On("FindByStatus", mock.Anything, domain.StatusApproved).Return([]*domain.Motel{first, second}, nil)

		rec := env.do(http.MethodGet, "/api/motels", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].ID)
	})

	t.Run("out-of-range or non-finite coordinates are ignored", func(t *testing.T) {
		first := &domain.Motel{ID: "first", Status: domain.StatusApproved, Location: domain.Location{Lat: 40, Lng: 40}}
		second := &domain.Motel{ID: "second", Status: domain.StatusApproved, Location: domain.Location{Lat: 1, Lng: 1}}

		for _, query := range []string{
			"lat=200&lng=0",
			"lat=0&lng=-300",
			"lat=NaN&lng=0",
			"lat=0&lng=Inf",
		} {
			env := newTestEnv(t)
			env.motels.On("FindByStatus", mock.Anything, domain.StatusApproved).Return([]*domain.Motel{first, second}, nil)

			rec := env.do(http.MethodGet, "/api/motels?"+query, "", nil)

			require.Equal(t, http.StatusOK, rec.Code, query)
			var got []MotelResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, 2, query)
			assert.Equal(t, "first", got[0].ID, query)
		}
	})

	t.Run("unknown motel is 404", func(t *testing.T) {
		env := newTestEnv(t)
		env.motels.On("FindByID", mock.Anything, domain.MotelID("ghost")).Return(nil, domain.ErrMotelNotFound)

		rec := env.do(http.MethodGet, "/api/motels/ghost", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateMotel(t *testing.T) {
	payload := `{"name":"Neon Palms","plan":"free","location":{"lat":-23.55,"lng":-46.63,"address":"Av. Central 100"}}`

	t.Run("without a token is 401", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodPost, "/api/motels", "", strings.NewReader(payload))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("authenticated caller gets a pending motel", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("FindBySubject", mock.Anything, domain.UserID("owner-1")).Return(nil, domain.ErrUserNotFound)
		env.motels.On("Create", mock.Anything, mock.AnythingOfType("*domain.Motel")).Return(nil)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodPost, "/api/motels", token, strings.NewReader(payload))

		require.Equal(t, http.StatusCreated, rec.Code)
		var got MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, "owner-1", got.OwnerID)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		env := newTestEnv(t)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodPost, "/api/motels", token, strings.NewReader(`{"plan":"free"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown plan fails validation", func(t *testing.T) {
		env := newTestEnv(t)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodPost, "/api/motels", token, strings.NewReader(`{"name":"X","plan":"gold"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateMotel(t *testing.T) {
	existing := &domain.Motel{ID: "m1", OwnerID: "owner-1", Name: "Neon Palms", Plan: domain.PlanFree, Status: domain.StatusApproved}

	t.Run("foreign motel is 403", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("intruder", domain.RoleUser)
		env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(existing, nil)

		token := signToken(t, "intruder", "Eve", "eve@example.com")
		rec := env.do(http.MethodPatch, "/api/motels/m1", token, strings.NewReader(`{"name":"Hijacked"}`))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner patch succeeds", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("owner-1", domain.RoleOwner)
		env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(existing, nil)
		env.motels.On("Patch", mock.Anything, domain.MotelID("m1"), mock.AnythingOfType("domain.MotelPatch")).Return(nil)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodPatch, "/api/motels/m1", token, strings.NewReader(`{"description":"Fresh paint"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("non-admin is 403", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("owner-1", domain.RoleOwner)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodPut, "/api/admin/motels/m1/status", token, strings.NewReader(`{"status":"approved"}`))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin approves a pending motel", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("admin-1", domain.RoleAdmin)
		env.users.On("FindBySubject", mock.Anything, domain.UserID("owner-1")).Return(nil, domain.ErrUserNotFound)
		motel := &domain.Motel{ID: "m1", OwnerID: "owner-1", Name: "Neon Palms", Status: domain.StatusPending}
		env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(motel, nil)
		env.motels.On("UpdateStatus", mock.Anything, domain.MotelID("m1"), domain.StatusApproved).Return(nil)

		token := signToken(t, "admin-1", "Root", "root@example.com")
		rec := env.do(http.MethodPut, "/api/admin/motels/m1/status", token, strings.NewReader(`{"status":"approved"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var got MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "approved", got.Status)
	})

	t.Run("status outside the state machine fails validation", func(t *testing.T) {
		env := newTestEnv(t)

		token := signToken(t, "admin-1", "Root", "root@example.com")
		rec := env.do(http.MethodPut, "/api/admin/motels/m1/status", token, strings.NewReader(`{"status":"archived"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminList(t *testing.T) {
	t.Run("admin sees every status", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("admin-1", domain.RoleAdmin)
		env.motels.On("FindAll", mock.Anything).Return([]*domain.Motel{
			{ID: "a", Status: domain.StatusPending},
			{ID: "b", Status: domain.StatusPaused},
		}, nil)

		token := signToken(t, "admin-1", "Root", "root@example.com")
		rec := env.do(http.MethodGet, "/api/admin/motels", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})

	t.Run("non-admin is 403", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("owner-1", domain.RoleOwner)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodGet, "/api/admin/motels", token, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteMotel(t *testing.T) {
	env := newTestEnv(t)
	env.knownUser("owner-1", domain.RoleOwner)
	motel := &domain.Motel{ID: "m1", OwnerID: "owner-1", Photos: []domain.PhotoRef{"photos/a.jpg"}}
	env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(motel, nil)
	env.storage.On("Remove", mock.Anything, domain.PhotoRef("photos/a.jpg")).Return(nil)
	env.motels.On("Delete", mock.Anything, domain.MotelID("m1")).Return(nil)

	token := signToken(t, "owner-1", "Ada", "ada@example.com")
	rec := env.do(http.MethodDelete, "/api/motels/m1", token, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	env.storage.AssertExpectations(t)
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range names {
		part, err := w.CreateFormFile("photos", name)
		require.NoError(t, err)
		_, err = part.Write([]byte{0xFF, 0xD8, 0xFF})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadPhotos(t *testing.T) {
	t.Run("batch over the free quota is 409", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("owner-1", domain.RoleOwner)
		motel := &domain.Motel{
			ID: "m1", OwnerID: "owner-1", Plan: domain.PlanFree,
			Photos: []domain.PhotoRef{"photos/a.jpg", "photos/b.jpg"},
		}
		env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(motel, nil)

		body, contentType := multipartBody(t, "c.jpg", "d.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/motels/m1/photos", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "owner-1", "Ada", "ada@example.com"))
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
		env.cache.AssertNotCalled(t, "InvalidateApproved", mock.Anything)
	})

	t.Run("admitted batch lands in the photo list", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("owner-1", domain.RoleOwner)
		motel := &domain.Motel{ID: "m1", OwnerID: "owner-1", Plan: domain.PlanFree, Photos: []domain.PhotoRef{}}
		env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(motel, nil)
		env.storage.On("Put", mock.Anything, "c.jpg", mock.Anything).Return(domain.PhotoRef("photos/c.jpg"), nil)
		env.motels.On("Patch", mock.Anything, domain.MotelID("m1"), mock.AnythingOfType("domain.MotelPatch")).Return(nil)
		env.storage.On("URL", mock.Anything, domain.PhotoRef("photos/c.jpg")).Return("https://cdn/c.jpg", nil)

		body, contentType := multipartBody(t, "c.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/motels/m1/photos", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "owner-1", "Ada", "ada@example.com"))
		rec := httptest.NewRecorder()
		env.e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []string{"photos/c.jpg"}, got.Photos)
		assert.Equal(t, []string{"https://cdn/c.jpg"}, got.PhotoURLs)
		env.cache.AssertCalled(t, "InvalidateApproved", mock.Anything)
	})
}

func TestRemovePhoto(t *testing.T) {
	t.Run("missing ref is 400", func(t *testing.T) {
		env := newTestEnv(t)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodDelete, "/api/motels/m1/photos", token, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("known ref is released and detached", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("owner-1", domain.RoleOwner)
		motel := &domain.Motel{ID: "m1", OwnerID: "owner-1", Photos: []domain.PhotoRef{"photos/a.jpg"}}
		env.motels.On("FindByID", mock.Anything, domain.MotelID("m1")).Return(motel, nil)
		env.storage.On("Remove", mock.Anything, domain.PhotoRef("photos/a.jpg")).Return(nil)
		env.motels.On("Patch", mock.Anything, domain.MotelID("m1"), mock.AnythingOfType("domain.MotelPatch")).Return(nil)

		token := signToken(t, "owner-1", "Ada", "ada@example.com")
		rec := env.do(http.MethodDelete, "/api/motels/m1/photos?ref=photos%2Fa.jpg", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got MotelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Empty(t, got.Photos)
		env.cache.AssertCalled(t, "InvalidateApproved", mock.Anything)
	})
}

func TestUserEndpoints(t *testing.T) {
	t.Run("first sync stores the caller with the default role", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.On("FindBySubject", mock.Anything, domain.UserID("new-subject")).Return(nil, domain.ErrUserNotFound)
		env.users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		token := signToken(t, "new-subject", "Ada", "ada@example.com")
		rec := env.do(http.MethodPost, "/api/users/sync", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "user", got.Role)
		assert.Equal(t, "new-subject", got.Subject)
	})

	t.Run("me without a token is 401", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(http.MethodGet, "/api/users/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me returns the stored record", func(t *testing.T) {
		env := newTestEnv(t)
		env.knownUser("s1", domain.RoleAdmin)

		token := signToken(t, "s1", "Root", "root@example.com")
		rec := env.do(http.MethodGet, "/api/users/me", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "admin", got.Role)
	})
}

func TestListMine(t *testing.T) {
	env := newTestEnv(t)
	env.knownUser("owner-1", domain.RoleOwner)
	env.motels.On("FindByOwner", mock.Anything, domain.UserID("owner-1")).Return([]*domain.Motel{
		{ID: "m1", OwnerID: "owner-1", Status: domain.StatusPending},
	}, nil)

	token := signToken(t, "owner-1", "Ada", "ada@example.com")
	rec := env.do(http.MethodGet, "/api/my/motels", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []MotelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "pending", got[0].Status)
}
