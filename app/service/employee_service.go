package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type EmployeeService struct {
	repo    repo.EmployeeRepository
	uploads repo.UploadRepository
}

func NewEmployeeService(repo repo.EmployeeRepository, uploads repo.UploadRepository) *EmployeeService {
	return &EmployeeService{repo: repo, uploads: uploads}
}

// /api/v1/employees
func (s *EmployeeService) List(c *fiber.Ctx) error {
	employees, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load employees",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.Employee]{
		Success: true,
		Data:    employees,
	})
}

// /api/v1/employees/:id
func (s *EmployeeService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid employee id",
		})
	}

	employee, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Employee not found",
		})
	}

	return c.JSON(model.SuccessResponse[model.Employee]{
		Success: true,
		Data:    *employee,
	})
}

// /api/v1/employees (POST)
func (s *EmployeeService) Create(c *fiber.Ctx) error {
	var req model.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to create employee",
		})
	}

	employee := model.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Position:      req.Position,
		Role:          req.Role,
		Description:   req.Description,
		Image:         req.Image,
		ImageUploadID: req.ImageUploadID,
		PasswordHash:  hash,
	}

	if err := s.repo.Create(&employee); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: "Email is already registered",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to create employee",
		})
	}

	s.linkUpload(c, req.ImageUploadID, &employee)

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.Employee]{
		Success: true,
		Message: "Employee created",
		Data:    employee,
	})
}

// /api/v1/employees/:id (PUT)
func (s *EmployeeService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid employee id",
		})
	}

	var req model.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	employee, err := s.repo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Employee not found",
		})
	}

	if req.FirstName != "" {
		employee.FirstName = req.FirstName
	}
	if req.LastName != "" {
		employee.LastName = req.LastName
	}
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.Position != "" {
		employee.Position = req.Position
	}
	if req.Role != "" {
		employee.Role = req.Role
	}
	if req.Description != "" {
		employee.Description = req.Description
	}
	if req.Image != "" {
		employee.Image = req.Image
	}
	if req.ImageUploadID != "" {
		employee.ImageUploadID = req.ImageUploadID
	}
	if req.Password != "" {
		hash, err := helper.HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
				Success: false,
				Message: "Failed to update employee",
			})
		}
		employee.PasswordHash = hash
	}

	if err := s.repo.Update(employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update employee",
		})
	}

	s.linkUpload(c, req.ImageUploadID, employee)

	return c.JSON(model.SuccessResponse[model.Employee]{
		Success: true,
		Message: "Employee updated",
		Data:    *employee,
	})
}

// /api/v1/employees/:id (DELETE)
func (s *EmployeeService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid employee id",
		})
	}

	if err := s.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to delete employee",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Employee deleted",
	})
}

// linkUpload ties an uploaded image back to the employee. Failures are
// logged only: the employee write already succeeded and is never rolled
// back over a broken link.
func (s *EmployeeService) linkUpload(c *fiber.Ctx, uploadID string, e *model.Employee) {
	if uploadID == "" {
		return
	}

	name := strings.TrimSpace(e.FirstName + " " + e.LastName)
	if err := s.uploads.Link(c.Context(), uploadID, e.ID.String(), name, model.ModuleEmployees); err != nil {
		log.Printf("Failed to link upload %s to employee %s: %v", uploadID, e.ID, err)
	}
}
