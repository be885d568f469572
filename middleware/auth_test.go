package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/config"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type stubEmployeeRepo struct {
	blacklisted map[string]bool
}

func (r *stubEmployeeRepo) Create(*model.Employee) error                   { return nil }
func (r *stubEmployeeRepo) FindByEmail(string) (*model.Employee, error)    { return nil, nil }
func (r *stubEmployeeRepo) FindByID(uuid.UUID) (*model.Employee, error)    { return nil, nil }
func (r *stubEmployeeRepo) FindAll() ([]model.Employee, error)             { return nil, nil }
func (r *stubEmployeeRepo) Update(*model.Employee) error                   { return nil }
func (r *stubEmployeeRepo) Delete(uuid.UUID) error                         { return nil }
func (r *stubEmployeeRepo) SetRefreshToken(uuid.UUID, string) error        { return nil }
func (r *stubEmployeeRepo) ClearRefreshToken(uuid.UUID) error              { return nil }
func (r *stubEmployeeRepo) AddBlacklistToken(model.BlacklistedToken) error { return nil }

func (r *stubEmployeeRepo) IsTokenBlacklisted(token string) (bool, error) {
	return r.blacklisted[token], nil
}

func gatedApp(repo *stubEmployeeRepo) *fiber.App {
	app := fiber.New()
	for _, module := range []string{
		model.ModuleEmployees, model.ModuleAttractions, model.ModuleRates, model.ModuleContacts,
	} {
		app.Get("/"+module, AuthRequired(repo), ModuleAccessRequired(module), func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
	}
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := helper.GenerateToken(model.Employee{
		ID:    uuid.New(),
		Email: "gate@tourism.test",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func getWithToken(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestModuleGateByRole(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	app := gatedApp(&stubEmployeeRepo{})

	tests := []struct {
		role   string
		module string
		want   int
	}{
		{model.RoleAdministrator, model.ModuleEmployees, http.StatusOK},
		{model.RoleAdmin, model.ModuleEmployees, http.StatusOK},
		{model.RoleEmployee, model.ModuleEmployees, http.StatusForbidden},
		{"guide", model.ModuleEmployees, http.StatusForbidden},
		{model.RoleEmployee, model.ModuleAttractions, http.StatusOK},
		{model.RoleEmployee, model.ModuleRates, http.StatusOK},
		{model.RoleEmployee, model.ModuleContacts, http.StatusOK},
		{"guide", model.ModuleAttractions, http.StatusOK},
	}

	for _, tt := range tests {
		resp := getWithToken(t, app, "/"+tt.module, tokenForRole(t, tt.role))
		require.Equal(t, tt.want, resp.StatusCode, "role %q module %q", tt.role, tt.module)
	}
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	app := gatedApp(&stubEmployeeRepo{})

	resp := getWithToken(t, app, "/"+model.ModuleAttractions, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredRejectsGarbageToken(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	app := gatedApp(&stubEmployeeRepo{})

	resp := getWithToken(t, app, "/"+model.ModuleAttractions, "garbage")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredRejectsRefreshToken(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	app := gatedApp(&stubEmployeeRepo{})

	refresh, err := helper.GenerateRefreshToken(model.Employee{
		ID:    uuid.New(),
		Email: "gate@tourism.test",
		Role:  model.RoleAdmin,
	}, false)
	require.NoError(t, err)

	resp := getWithToken(t, app, "/"+model.ModuleAttractions, refresh)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	token := tokenForRole(t, model.RoleAdmin)
	repo := &stubEmployeeRepo{blacklisted: map[string]bool{token: true}}
	app := gatedApp(repo)

	resp := getWithToken(t, app, "/"+model.ModuleAttractions, token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleCaseInsensitive(t *testing.T) {
	config.Env.JWTSecret = "test-secret"

	app := gatedApp(&stubEmployeeRepo{})

	resp := getWithToken(t, app, "/"+model.ModuleEmployees, tokenForRole(t, "Administrator"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
