package service

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ChristianRende22/Web-proyecto/app/client"
	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type UploadService struct {
	repo       repo.UploadRepository
	cloudinary *client.Cloudinary
}

func NewUploadService(repo repo.UploadRepository, cloudinary *client.Cloudinary) *UploadService {
	return &UploadService{repo: repo, cloudinary: cloudinary}
}

// /api/v1/uploads (POST, multipart)
//
// Fields: file (the image), module, entity_id, entity_name. Validation runs
// before any call to the image host.
func (s *UploadService) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: model.ErrNoFile.Error(),
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := model.ValidateUpload(fileHeader.Filename, contentType, fileHeader.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to read file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to read file",
		})
	}

	result, err := s.cloudinary.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	module := c.FormValue("module", "general")
	entityID := c.FormValue("entity_id")
	entityName := c.FormValue("entity_name", "Unnamed")

	record := model.ImageUpload{
		URL:              result.SecureURL,
		PublicID:         result.PublicID,
		Format:           result.Format,
		Width:            result.Width,
		Height:           result.Height,
		Bytes:            result.Bytes,
		OriginalFilename: fileHeader.Filename,
		Module:           module,
		EntityID:         entityID,
		EntityName:       entityName,
		AssetID:          result.AssetID,
		Version:          result.Version,
		ResourceType:     result.ResourceType,
	}
	if entityID != "" {
		record.UsedIn = module + "/" + entityID
	}

	// The Cloudinary upload already succeeded; a broken record write only
	// loses the audit row, not the image.
	uploadID := ""
	if err := s.repo.Create(c.Context(), &record); err != nil {
		log.Printf("Image uploaded but record not saved: %v", err)
	} else {
		uploadID = record.ID.Hex()
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessResponse[model.UploadResponse]{
		Success: true,
		Message: "Image uploaded",
		Data: model.UploadResponse{
			URL:      result.SecureURL,
			UploadID: uploadID,
		},
	})
}

// /api/v1/uploads/:id/link (POST)
func (s *UploadService) Link(c *fiber.Ctx) error {
	id := c.Params("id")

	var req model.LinkUploadRequest
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

	if err := s.repo.Link(c.Context(), id, req.EntityID, req.EntityName, req.Module); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Upload not found",
		})
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Upload linked",
	})
}
