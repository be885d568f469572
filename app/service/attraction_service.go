package service

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type AttractionService struct {
	repo repo.AttractionRepository
	subs repo.SubResourceRepository
}

func NewAttractionService(repo repo.AttractionRepository, subs repo.SubResourceRepository) *AttractionService {
	return &AttractionService{repo: repo, subs: subs}
}

type AttractionDetail struct {
	model.Attraction
	SubResources map[string][]string `json:"sub_resources"`
}

// /api/v1/attractions
func (s *AttractionService) List(c *fiber.Ctx) error {
	attractions, err := s.repo.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load attractions",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.Attraction]{
		Success: true,
		Data:    attractions,
	})
}

// /api/v1/attractions/:id
func (s *AttractionService) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	attraction, err := s.repo.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Attraction not found",
		})
	}

	detail := AttractionDetail{
		Attraction:   *attraction,
		SubResources: s.readSubResources(c, id),
	}

	return c.JSON(model.SuccessResponse[AttractionDetail]{
		Success: true,
		Data:    detail,
	})
}

// readSubResources fetches the three array documents concurrently and joins
// them before responding. Each read degrades to empty on its own.
func (s *AttractionService) readSubResources(c *fiber.Ctx, ownerID string) map[string][]string {
	ctx := c.Context()

	var mu sync.Mutex
	var wg sync.WaitGroup

	result := make(map[string][]string, len(model.SubResourceTypes()))
	for _, subType := range model.SubResourceTypes() {
		wg.Add(1)
		go func(subType string) {
			defer wg.Done()
			items, _ := s.subs.Read(ctx, ownerID, subType)
			mu.Lock()
			result[subType] = items
			mu.Unlock()
		}(subType)
	}
	wg.Wait()

	return result
}

// /api/v1/attractions (POST)
func (s *AttractionService) Create(c *fiber.Ctx) error {
	var req model.AttractionRequest
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

	attraction := attractionFromRequest(&req)
	if err := s.repo.Create(c.Context(), &attraction); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save attraction",
		})
	}

	// Eagerly initialize the three empty array documents so reads on fresh
	// attractions never special-case a missing sub-collection.
	if err := s.subs.InitEmpty(c.Context(), attraction.ID.Hex()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to initialize attraction details",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.Attraction]{
		Success: true,
		Message: "Attraction created",
		Data:    attraction,
	})
}

// /api/v1/attractions/:id (PUT)
func (s *AttractionService) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req model.AttractionRequest
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

	attraction := attractionFromRequest(&req)
	if err := s.repo.Update(c.Context(), id, &attraction); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Attraction not found",
		})
	}

	updated, err := s.repo.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load attraction",
		})
	}

	return c.JSON(model.SuccessResponse[model.Attraction]{
		Success: true,
		Message: "Attraction updated",
		Data:    *updated,
	})
}

// /api/v1/attractions/:id (DELETE)
func (s *AttractionService) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.repo.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Attraction not found",
		})
	}

	if err := s.subs.DeleteForOwner(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to delete attraction details",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Attraction deleted",
	})
}

// /api/v1/attractions/:id/subresources/:type
func (s *AttractionService) GetSubResource(c *fiber.Ctx) error {
	id := c.Params("id")
	subType := c.Params("type")

	if !model.ValidSubResourceType(subType) {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: model.ErrUnknownSubResourceType.Error(),
		})
	}

	items, err := s.subs.Read(c.Context(), id, subType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load details",
		})
	}

	return c.JSON(model.SuccessResponse[model.SubResource]{
		Success: true,
		Data:    model.SubResource{OwnerID: id, Type: subType, Items: items},
	})
}

// /api/v1/attractions/:id/subresources/:type (PUT)
func (s *AttractionService) PutSubResource(c *fiber.Ctx) error {
	id := c.Params("id")
	subType := c.Params("type")

	if !model.ValidSubResourceType(subType) {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: model.ErrUnknownSubResourceType.Error(),
		})
	}

	var req model.SubResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if _, err := s.repo.FindByID(c.Context(), id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Attraction not found",
		})
	}

	items := model.CleanItems(req.Items)

	childID, err := s.subs.FindChildID(c.Context(), id, subType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save details",
		})
	}

	if err := s.subs.Write(c.Context(), id, subType, items, childID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save details",
		})
	}

	return c.JSON(model.SuccessResponse[model.SubResource]{
		Success: true,
		Message: "Details saved",
		Data:    model.SubResource{OwnerID: id, Type: subType, Items: items},
	})
}

func attractionFromRequest(req *model.AttractionRequest) model.Attraction {
	return model.Attraction{
		Place:         req.Place,
		Category:      req.Category,
		Description:   req.Description,
		Image:         req.Image,
		ImageUploadID: req.ImageUploadID,
		Activities:    model.CleanItems(req.Activities),
		Distance:      req.Distance,
		Time:          req.Time,
		Map:           model.NormalizeMapEmbed(req.Map),
	}
}
