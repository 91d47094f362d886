package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"lead-ui/database"
	"lead-ui/database/model"
	"lead-ui/logger"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine(t *testing.T) *gin.Engine {
	logger.InitLogger(logging.DEBUG)
	os.Remove("test.db")
	require.NoError(t, database.InitDB("test.db"))

	s := NewServer()
	engine, err := s.initRouter()
	require.NoError(t, err)
	return engine
}

func teardown() {
	if sqlDB, err := database.GetDB().DB(); err == nil {
		sqlDB.Close()
	}
	os.Remove("test.db")
}

// sessionCookie returns the last session cookie set by the response, or nil.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "lead-ui" {
			cookie = c
		}
	}
	return cookie
}

func doLogin(engine *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doJSON(engine *gin.Engine, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func leadCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, database.GetDB().Model(model.Lead{}).Count(&count).Error)
	return count
}

func TestLeadsRequireSession(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	w := doJSON(engine, http.MethodGet, "/api/leads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "authentication required"}`, w.Body.String())

	w = doJSON(engine, http.MethodPost, "/api/leads", `{"name": "Acme Corp"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "authentication required"}`, w.Body.String())
	assert.EqualValues(t, 0, leadCount(t))
}

func TestBadLoginDoesNotStartSession(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	w := doLogin(engine, "admin", "wrong")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Nil(t, sessionCookie(w))

	// unknown user looks exactly like a wrong password
	w2 := doLogin(engine, "nobody", "password")
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Invalid credentials")
	assert.Nil(t, sessionCookie(w2))
}

func TestLoginStartsSession(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	w := doLogin(engine, "admin", "password")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	leads := doJSON(engine, http.MethodGet, "/api/leads", "", cookie)
	assert.Equal(t, http.StatusOK, leads.Code)
	assert.JSONEq(t, `[]`, leads.Body.String())
}

func TestLeadValidation(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	cookie := sessionCookie(doLogin(engine, "admin", "password"))
	require.NotNil(t, cookie)

	w := doJSON(engine, http.MethodPost, "/api/leads", `{"email": "a@b.com"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "name required"}`, w.Body.String())
	assert.EqualValues(t, 0, leadCount(t))
}

func TestLeadDefaultStatus(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	cookie := sessionCookie(doLogin(engine, "admin", "password"))
	require.NotNil(t, cookie)

	w := doJSON(engine, http.MethodPost, "/api/leads", `{"name": "Acme Corp"}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code)

	var lead model.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lead))
	assert.Equal(t, "New", lead.Status)
}

func TestLeadOrdering(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	cookie := sessionCookie(doLogin(engine, "admin", "password"))
	require.NotNil(t, cookie)

	for _, name := range []string{"A", "B", "C"} {
		w := doJSON(engine, http.MethodPost, "/api/leads", `{"name": "`+name+`"}`, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(engine, http.MethodGet, "/api/leads", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var leads []model.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 3)
	assert.Equal(t, "C", leads[0].Name)
	assert.Equal(t, "B", leads[1].Name)
	assert.Equal(t, "A", leads[2].Name)
}

func TestEndToEndLeadLifecycle(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	login := doLogin(engine, "admin", "password")
	require.Equal(t, http.StatusFound, login.Code)
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	created := doJSON(engine, http.MethodPost, "/api/leads",
		`{"name":"Jane Doe","email":"jane@x.com","company":"X","status":"Contacted"}`, cookie)
	require.Equal(t, http.StatusCreated, created.Code)

	var lead model.Lead
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &lead))
	assert.NotZero(t, lead.Id)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "jane@x.com", lead.Email)
	assert.Equal(t, "X", lead.Company)
	assert.Equal(t, "Contacted", lead.Status)

	list := doJSON(engine, http.MethodGet, "/api/leads", "", cookie)
	require.Equal(t, http.StatusOK, list.Code)

	var leads []model.Lead
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, lead, leads[0])
}

func TestIndexRedirectsAnonymous(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLogoutClearsSession(t *testing.T) {
	engine := setupEngine(t)
	defer teardown()

	cookie := sessionCookie(doLogin(engine, "admin", "password"))
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cleared := sessionCookie(w)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)

	// logging out again without a session is not an error
	req2 := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusTemporaryRedirect, w2.Code)
}
