package service

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

func employeeApp(s *EmployeeService) *fiber.App {
	app := fiber.New()
	app.Post("/employees", s.Create)
	app.Put("/employees/:id", s.Update)
	return app
}

func validEmployeeRequest() model.CreateEmployeeRequest {
	return model.CreateEmployeeRequest{
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "maria@tourism.test",
		Password:  "secret123",
		Position:  "Tour guide",
		Role:      model.RoleEmployee,
	}
}

func TestCreateEmployeeHashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	app := employeeApp(NewEmployeeService(repo, newFakeUploadRepo()))

	resp := postJSON(t, app, "/employees", validEmployeeRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	stored, err := repo.FindByEmail("maria@tourism.test")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.PasswordHash)
	require.True(t, helper.CheckPasswordHash("secret123", stored.PasswordHash))

	// The hash never leaves the API.
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.NotContains(t, data, "password_hash")
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo(activeEmployee(t, "maria@tourism.test", "secret123", model.RoleEmployee))
	app := employeeApp(NewEmployeeService(repo, newFakeUploadRepo()))

	resp := postJSON(t, app, "/employees", validEmployeeRequest())
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateEmployeeRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	app := employeeApp(NewEmployeeService(newFakeEmployeeRepo(), newFakeUploadRepo()))

	req := validEmployeeRequest()
	req.Role = "superuser"
	resp := postJSON(t, app, "/employees", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateEmployeePatchesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	employee := activeEmployee(t, "maria@tourism.test", "secret123", model.RoleEmployee)
	employee.Position = "Tour guide"
	repo := newFakeEmployeeRepo(employee)
	app := employeeApp(NewEmployeeService(repo, newFakeUploadRepo()))

	resp := putJSON(t, app, "/employees/"+employee.ID.String(), model.UpdateEmployeeRequest{
		Position: "Head guide",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := repo.FindByEmail("maria@tourism.test")
	require.NoError(t, err)
	require.Equal(t, "Head guide", stored.Position)
	require.Equal(t, "Maria", stored.FirstName)
	require.True(t, helper.CheckPasswordHash("secret123", stored.PasswordHash))
}
