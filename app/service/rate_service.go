package service

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type RateService struct {
	repo repo.RateRepository
}

func NewRateService(repo repo.RateRepository) *RateService {
	return &RateService{repo: repo}
}

type RateCategoryDetail struct {
	model.RateCategory
	Places []model.Place `json:"places"`
}

// /api/v1/rates
func (s *RateService) List(c *fiber.Ctx) error {
	categories, err := s.repo.FindAllCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load rate categories",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.RateCategoryWithCount]{
		Success: true,
		Data:    categories,
	})
}

// /api/v1/rates/:id
func (s *RateService) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	category, err := s.repo.FindCategoryByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Rate category not found",
		})
	}

	places, err := s.repo.FindPlacesByCategory(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load places",
		})
	}

	return c.JSON(model.SuccessResponse[RateCategoryDetail]{
		Success: true,
		Data:    RateCategoryDetail{RateCategory: *category, Places: places},
	})
}

// /api/v1/rates (POST)
func (s *RateService) Create(c *fiber.Ctx) error {
	var req model.RateCategoryRequest
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

	category := model.RateCategory{
		Name:          req.Name,
		Image:         req.Image,
		ImageUploadID: req.ImageUploadID,
	}

	if err := s.repo.CreateCategory(c.Context(), &category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save rate category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.RateCategory]{
		Success: true,
		Message: "Rate category created",
		Data:    category,
	})
}

// /api/v1/rates/:id (PUT)
func (s *RateService) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req model.RateCategoryRequest
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

	category := model.RateCategory{
		Name:          req.Name,
		Image:         req.Image,
		ImageUploadID: req.ImageUploadID,
	}

	if err := s.repo.UpdateCategory(c.Context(), id, &category); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Rate category not found",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Rate category updated",
	})
}

// /api/v1/rates/:id (DELETE)
func (s *RateService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.repo.DeleteCategory(c.Context(), id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Rate category not found",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Rate category deleted",
	})
}

// /api/v1/rates/:id/places (POST)
func (s *RateService) CreatePlace(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if _, err := s.repo.FindCategoryByID(c.Context(), categoryID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Rate category not found",
		})
	}

	var req model.PlaceRequest
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

	place := model.Place{
		CategoryID:  categoryID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Cost:        req.Cost,
	}

	if err := s.repo.CreatePlace(c.Context(), &place); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save place",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.Place]{
		Success: true,
		Message: "Place created",
		Data:    place,
	})
}

// /api/v1/rates/:id/places/:placeId (PUT)
func (s *RateService) UpdatePlace(c *fiber.Ctx) error {
	placeID := c.Params("placeId")

	var req model.PlaceRequest
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

	place := model.Place{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Cost:        req.Cost,
	}

	if err := s.repo.UpdatePlace(c.Context(), placeID, &place); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Place not found",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Place updated",
	})
}

// /api/v1/rates/:id/places/:placeId (DELETE)
func (s *RateService) DeletePlace(c *fiber.Ctx) error {
	placeID := c.Params("placeId")

	if err := s.repo.DeletePlace(c.Context(), placeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Place not found",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Place deleted",
	})
}
