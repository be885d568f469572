package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

type fakeAttractionRepo struct {
	attractions map[string]*model.Attraction
}

func newFakeAttractionRepo(attractions ...*model.Attraction) *fakeAttractionRepo {
	r := &fakeAttractionRepo{attractions: make(map[string]*model.Attraction)}
	for _, a := range attractions {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		r.attractions[a.ID.Hex()] = a
	}
	return r
}

func (r *fakeAttractionRepo) Create(_ context.Context, a *model.Attraction) error {
	a.ID = primitive.NewObjectID()
	r.attractions[a.ID.Hex()] = a
	return nil
}

func (r *fakeAttractionRepo) FindAll(_ context.Context) ([]model.Attraction, error) {
	out := make([]model.Attraction, 0, len(r.attractions))
	for _, a := range r.attractions {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAttractionRepo) FindByID(_ context.Context, id string) (*model.Attraction, error) {
	a, ok := r.attractions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

func (r *fakeAttractionRepo) Update(_ context.Context, id string, a *model.Attraction) error {
	existing, ok := r.attractions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.ID = existing.ID
	r.attractions[id] = a
	return nil
}

func (r *fakeAttractionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.attractions[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.attractions, id)
	return nil
}

type subResourceKey struct {
	ownerID string
	subType string
}

type fakeSubResourceRepo struct {
	docs map[subResourceKey][]string
}

func newFakeSubResourceRepo() *fakeSubResourceRepo {
	return &fakeSubResourceRepo{docs: make(map[subResourceKey][]string)}
}

func (r *fakeSubResourceRepo) Read(_ context.Context, ownerID, subType string) ([]string, error) {
	items, ok := r.docs[subResourceKey{ownerID, subType}]
	if !ok {
		// Owners predating the convention read as empty, never as an error.
		return []string{}, nil
	}
	return items, nil
}

func (r *fakeSubResourceRepo) Write(_ context.Context, ownerID, subType string, items []string, _ string) error {
	r.docs[subResourceKey{ownerID, subType}] = items
	return nil
}

func (r *fakeSubResourceRepo) FindChildID(_ context.Context, ownerID, subType string) (string, error) {
	if _, ok := r.docs[subResourceKey{ownerID, subType}]; ok {
		return model.SubResourceInitID, nil
	}
	return "", nil
}

func (r *fakeSubResourceRepo) InitEmpty(_ context.Context, ownerID string) error {
	for _, subType := range model.SubResourceTypes() {
		r.docs[subResourceKey{ownerID, subType}] = []string{}
	}
	return nil
}

func (r *fakeSubResourceRepo) DeleteForOwner(_ context.Context, ownerID string) error {
	for _, subType := range model.SubResourceTypes() {
		delete(r.docs, subResourceKey{ownerID, subType})
	}
	return nil
}

func attractionApp(s *AttractionService) *fiber.App {
	app := fiber.New()
	app.Get("/attractions/:id", s.Get)
	app.Post("/attractions", s.Create)
	app.Delete("/attractions/:id", s.Delete)
	app.Get("/attractions/:id/subresources/:type", s.GetSubResource)
	app.Put("/attractions/:id/subresources/:type", s.PutSubResource)
	return app
}

func validAttractionRequest() model.AttractionRequest {
	return model.AttractionRequest{
		Place:       "El Tunco",
		Category:    "playas",
		Description: "Black sand surf beach",
	}
}

func TestCreateAttractionInitializesSubResources(t *testing.T) {
	t.Parallel()

	repo := newFakeAttractionRepo()
	subs := newFakeSubResourceRepo()
	app := attractionApp(NewAttractionService(repo, subs))

	resp := postJSON(t, app, "/attractions", validAttractionRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body model.SuccessResponse[model.Attraction]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	ownerID := body.Data.ID.Hex()
	for _, subType := range model.SubResourceTypes() {
		items, ok := subs.docs[subResourceKey{ownerID, subType}]
		require.True(t, ok, "missing %s document", subType)
		require.Empty(t, items)
	}
}

func TestCreateAttractionRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	app := attractionApp(NewAttractionService(newFakeAttractionRepo(), newFakeSubResourceRepo()))

	req := validAttractionRequest()
	req.Category = "shopping"
	resp := postJSON(t, app, "/attractions", req)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAttractionJoinsSubResources(t *testing.T) {
	t.Parallel()

	attraction := &model.Attraction{Place: "El Tunco", Category: "playas"}
	repo := newFakeAttractionRepo(attraction)
	subs := newFakeSubResourceRepo()
	ownerID := attraction.ID.Hex()
	subs.docs[subResourceKey{ownerID, model.SubResourceOnSite}] = []string{"Surfing", "Sunset bar"}
	subs.docs[subResourceKey{ownerID, model.SubResourcePublicTransport}] = []string{"Bus 102"}

	app := attractionApp(NewAttractionService(repo, subs))

	req := httptest.NewRequest(http.MethodGet, "/attractions/"+ownerID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.SuccessResponse[AttractionDetail]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Equal(t, []string{"Surfing", "Sunset bar"}, body.Data.SubResources[model.SubResourceOnSite])
	require.Equal(t, []string{"Bus 102"}, body.Data.SubResources[model.SubResourcePublicTransport])
	// Never written, still present and empty.
	require.Empty(t, body.Data.SubResources[model.SubResourcePrivateTransport])
	require.Contains(t, body.Data.SubResources, model.SubResourcePrivateTransport)
}

func TestPutSubResourceCleansAndPersists(t *testing.T) {
	t.Parallel()

	attraction := &model.Attraction{Place: "El Tunco", Category: "playas"}
	repo := newFakeAttractionRepo(attraction)
	subs := newFakeSubResourceRepo()
	app := attractionApp(NewAttractionService(repo, subs))

	ownerID := attraction.ID.Hex()
	path := "/attractions/" + ownerID + "/subresources/" + model.SubResourceOnSite
	resp := putJSON(t, app, path, model.SubResourceRequest{
		Items: []string{"", "  ", " Surfing ", "Snorkeling"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.SuccessResponse[model.SubResource]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, []string{"Surfing", "Snorkeling"}, body.Data.Items)

	// Write-then-read returns exactly the cleaned sequence.
	require.Equal(t, []string{"Surfing", "Snorkeling"}, subs.docs[subResourceKey{ownerID, model.SubResourceOnSite}])
}

func TestPutSubResourceUnknownType(t *testing.T) {
	t.Parallel()

	attraction := &model.Attraction{Place: "El Tunco", Category: "playas"}
	app := attractionApp(NewAttractionService(newFakeAttractionRepo(attraction), newFakeSubResourceRepo()))

	path := "/attractions/" + attraction.ID.Hex() + "/subresources/souvenirs"
	resp := putJSON(t, app, path, model.SubResourceRequest{Items: []string{"x"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPutSubResourceMissingAttraction(t *testing.T) {
	t.Parallel()

	app := attractionApp(NewAttractionService(newFakeAttractionRepo(), newFakeSubResourceRepo()))

	path := "/attractions/" + primitive.NewObjectID().Hex() + "/subresources/" + model.SubResourceOnSite
	resp := putJSON(t, app, path, model.SubResourceRequest{Items: []string{"x"}})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteAttractionDropsSubResources(t *testing.T) {
	t.Parallel()

	attraction := &model.Attraction{Place: "El Tunco", Category: "playas"}
	repo := newFakeAttractionRepo(attraction)
	subs := newFakeSubResourceRepo()
	ownerID := attraction.ID.Hex()
	require.NoError(t, subs.InitEmpty(context.Background(), ownerID))

	app := attractionApp(NewAttractionService(repo, subs))

	req := httptest.NewRequest(http.MethodDelete, "/attractions/"+ownerID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Empty(t, repo.attractions)
	require.Empty(t, subs.docs)
}
