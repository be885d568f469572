package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

type fakeContactRepo struct {
	submissions []model.ContactSubmission
	createErr   error
}

func (r *fakeContactRepo) Create(_ context.Context, c *model.ContactSubmission) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	r.submissions = append(r.submissions, *c)
	return nil
}

func (r *fakeContactRepo) FindAll(_ context.Context) ([]model.ContactSubmission, error) {
	return r.submissions, nil
}

func (r *fakeContactRepo) FindByID(_ context.Context, id string) (*model.ContactSubmission, error) {
	for _, s := range r.submissions {
		if s.ID.Hex() == id {
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func contactApp(s *ContactService) *fiber.App {
	app := fiber.New()
	app.Post("/contact", s.Submit)
	app.Get("/contacts/export", s.ExportCSV)
	return app
}

func TestSubmitContact(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	app := contactApp(NewContactService(repo))

	resp := postJSON(t, app, "/contact", model.ContactRequest{
		Name:       "Ana",
		Email:      "ana@example.test",
		Newsletter: true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, repo.submissions, 1)
	require.True(t, repo.submissions[0].Newsletter)
}

func TestSubmitContactMissingFields(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	app := contactApp(NewContactService(repo))

	resp := postJSON(t, app, "/contact", model.ContactRequest{Name: "Ana"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, repo.submissions)
}

func TestExportCSVHeaders(t *testing.T) {
	t.Parallel()

	repo := &fakeContactRepo{}
	require.NoError(t, repo.Create(context.Background(), &model.ContactSubmission{
		Name:  "Ana",
		Email: "ana@example.test",
	}))
	app := contactApp(NewContactService(repo))

	req := httptest.NewRequest(http.MethodGet, "/contacts/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "contacts_")
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".csv")
}

func TestBuildContactsCSV(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	contacts := []model.ContactSubmission{
		{
			Name:        "Ana",
			Email:       "ana@example.test",
			Phone:       "7777-7777",
			Destination: "El Tunco",
			TravelDate:  "2026-04-01",
			People:      "4",
			Budget:      "$500",
			Newsletter:  true,
			Message:     "Do you have, \"family\" packages?",
			CreatedAt:   created,
		},
		{
			Name:  "Luis",
			Email: "luis@example.test",
		},
	}

	data, err := BuildContactsCSV(contacts)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Date,Name,Email,Phone,Destination,Travel Date,People,Budget,Newsletter,Message", lines[0])
	require.Contains(t, lines[1], "2026-03-14,Ana,ana@example.test")
	require.Contains(t, lines[1], "Yes")
	// Commas and quotes in the message survive the round trip escaped.
	require.Contains(t, lines[1], `"Do you have, ""family"" packages?"`)
	// Zero CreatedAt exports as an empty date, newsletter defaults to No.
	require.Contains(t, lines[2], ",Luis,luis@example.test")
	require.Contains(t, lines[2], "No")
}

func TestBuildContactsCSVEmpty(t *testing.T) {
	t.Parallel()

	data, err := BuildContactsCSV(nil)
	require.NoError(t, err)
	require.Equal(t, "Date,Name,Email,Phone,Destination,Travel Date,People,Budget,Newsletter,Message\n", string(data))
}
