package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type ContactService struct {
	repo repo.ContactRepository
}

func NewContactService(repo repo.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// /api/v1/public/contact (POST)
func (s *ContactService) Submit(c *fiber.Ctx) error {
	var req model.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Please fill in your name and email address",
		})
	}

	submission := model.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Destination: req.Destination,
		TravelDate:  req.TravelDate,
		People:      req.People,
		Budget:      req.Budget,
		Message:     req.Message,
		Newsletter:  req.Newsletter,
	}

	if err := s.repo.Create(c.Context(), &submission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Something went wrong sending your message. Please try again later.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Thank you, your message was sent. We will contact you soon.",
	})
}

// /api/v1/contacts
func (s *ContactService) List(c *fiber.Ctx) error {
	contacts, err := s.repo.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load contact submissions",
		})
	}

	return c.JSON(model.SuccessResponse[[]model.ContactSubmission]{
		Success: true,
		Data:    contacts,
	})
}

// /api/v1/contacts/:id
func (s *ContactService) Get(c *fiber.Ctx) error {
	contact, err := s.repo.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Contact submission not found",
		})
	}

	return c.JSON(model.SuccessResponse[model.ContactSubmission]{
		Success: true,
		Data:    *contact,
	})
}

// /api/v1/contacts/export
func (s *ContactService) ExportCSV(c *fiber.Ctx) error {
	contacts, err := s.repo.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load contact submissions",
		})
	}

	data, err := BuildContactsCSV(contacts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to export contact submissions",
		})
	}

	filename := "contacts_" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

var contactsCSVHeader = []string{
	"Date", "Name", "Email", "Phone", "Destination",
	"Travel Date", "People", "Budget", "Newsletter", "Message",
}

func BuildContactsCSV(contacts []model.ContactSubmission) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(contactsCSVHeader); err != nil {
		return nil, err
	}

	for _, contact := range contacts {
		newsletter := "No"
		if contact.Newsletter {
			newsletter = "Yes"
		}

		date := ""
		if !contact.CreatedAt.IsZero() {
			date = contact.CreatedAt.Format("2006-01-02")
		}

		row := []string{
			date,
			contact.Name,
			contact.Email,
			contact.Phone,
			contact.Destination,
			contact.TravelDate,
			contact.People,
			contact.Budget,
			newsletter,
			contact.Message,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
