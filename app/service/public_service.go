package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
)

// PublicService serves the read-only site endpoints. No auth, no role gate.
type PublicService struct {
	attractions repo.AttractionRepository
	subs        repo.SubResourceRepository
	rates       repo.RateRepository
	employees   repo.EmployeeRepository
}

func NewPublicService(
	attractions repo.AttractionRepository,
	subs repo.SubResourceRepository,
	rates repo.RateRepository,
	employees repo.EmployeeRepository,
) *PublicService {
	return &PublicService{
		attractions: attractions,
		subs:        subs,
		rates:       rates,
		employees:   employees,
	}
}

// TeamMember is the public projection of an employee. Credentials and
// internal fields stay out of it.
type TeamMember struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Position    string `json:"position"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// /api/v1/public/attractions
func (s *PublicService) ListAttractions(c *fiber.Ctx) error {
	attractions, err := s.attractions.FindAll(c.Context())
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

// /api/v1/public/attractions/:id
func (s *PublicService) GetAttraction(c *fiber.Ctx) error {
	id := c.Params("id")

	attraction, err := s.attractions.FindByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Attraction not found",
		})
	}

	admin := AttractionService{repo: s.attractions, subs: s.subs}
	detail := AttractionDetail{
		Attraction:   *attraction,
		SubResources: admin.readSubResources(c, id),
	}

	return c.JSON(model.SuccessResponse[AttractionDetail]{
		Success: true,
		Data:    detail,
	})
}

// /api/v1/public/rates
func (s *PublicService) ListRates(c *fiber.Ctx) error {
	categories, err := s.rates.FindAllCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load rate categories",
		})
	}

	details := make([]RateCategoryDetail, 0, len(categories))
	for _, category := range categories {
		places, err := s.rates.FindPlacesByCategory(c.Context(), category.ID.Hex())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
				Success: false,
				Message: "Failed to load places",
			})
		}
		details = append(details, RateCategoryDetail{
			RateCategory: category.RateCategory,
			Places:       places,
		})
	}

	return c.JSON(model.SuccessResponse[[]RateCategoryDetail]{
		Success: true,
		Data:    details,
	})
}

// /api/v1/public/team
//
// Administrators are listed first, then the rest of the staff, keeping each
// group's stored order.
func (s *PublicService) ListTeam(c *fiber.Ctx) error {
	employees, err := s.employees.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to load team",
		})
	}

	admins := make([]TeamMember, 0, len(employees))
	staff := make([]TeamMember, 0, len(employees))
	for _, e := range employees {
		member := TeamMember{
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			Position:    e.Position,
			Role:        e.Role,
			Description: e.Description,
			Image:       e.Image,
		}
		switch strings.ToLower(e.Role) {
		case model.RoleAdministrator, model.RoleAdmin:
			admins = append(admins, member)
		default:
			staff = append(staff, member)
		}
	}

	return c.JSON(model.SuccessResponse[[]TeamMember]{
		Success: true,
		Data:    append(admins, staff...),
	})
}
