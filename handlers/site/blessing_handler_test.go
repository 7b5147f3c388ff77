package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"dugun.link/events"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlessingService bellek içi IBlessingService.
type fakeBlessingService struct {
	blessings   []models.Blessing
	nextID      uint
	fail        bool
	autoApprove bool
	publisher   events.Publisher
	onList      func() // ListApproved çağrısında tetiklenir (sıralama kontrolü)
}

func (f *fakeBlessingService) SubmitBlessing(ctx context.Context, input services.BlessingInput) (*models.Blessing, error) {
	blessing, err := services.ValidateBlessing(input, f.autoApprove)
	if err != nil {
		return nil, err
	}
	if f.fail {
		return nil, services.ErrBlessingCreationFailed
	}
	f.nextID++
	blessing.ID = f.nextID
	f.blessings = append([]models.Blessing{*blessing}, f.blessings...)
	if f.publisher != nil {
		_ = f.publisher.Publish(ctx, events.TopicBlessingCreated, blessing)
	}
	return blessing, nil
}

func (f *fakeBlessingService) ListApproved(ctx context.Context) ([]models.Blessing, error) {
	if f.onList != nil {
		f.onList()
	}
	if f.fail {
		return nil, services.ErrBlessingListFailed
	}
	approved := make([]models.Blessing, 0)
	for _, b := range f.blessings {
		if b.IsApproved {
			approved = append(approved, b)
		}
	}
	return approved, nil
}

func (f *fakeBlessingService) ListAll(ctx context.Context) ([]models.Blessing, error) {
	if f.fail {
		return nil, services.ErrBlessingListFailed
	}
	return f.blessings, nil
}

func (f *fakeBlessingService) ListAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if f.fail {
		return nil, services.ErrBlessingListFailed
	}
	params.Validate()
	return &queryparams.PaginatedResult{
		Data: f.blessings,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  int64(len(f.blessings)),
			TotalPages:  queryparams.CalculateTotalPages(int64(len(f.blessings)), params.PerPage),
		},
	}, nil
}

func (f *fakeBlessingService) ToggleApproval(ctx context.Context, id uint) (bool, error) {
	for i := range f.blessings {
		if f.blessings[i].ID == id {
			f.blessings[i].IsApproved = !f.blessings[i].IsApproved
			return f.blessings[i].IsApproved, nil
		}
	}
	return false, services.ErrBlessingNotFound
}

func newBlessingTestApp(service services.IBlessingService) *fiber.App {
	app := fiber.New()
	handler := NewBlessingHandlerWithService(service)
	app.Post("/blessings", handler.CreateBlessing)
	app.Get("/blessings", handler.ListBlessings)
	return app
}

func TestCreateBlessing_Success(t *testing.T) {
	app := newBlessingTestApp(&fakeBlessingService{autoApprove: true})

	status, body := postJSON(t, app, "/blessings", fiber.Map{
		"name":    "Ali",
		"message": "Bir ömür boyu mutluluklar!",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Ali", data["name"])
	assert.Equal(t, true, data["is_approved"])
}

func TestCreateBlessing_MessageTooLong(t *testing.T) {
	app := newBlessingTestApp(&fakeBlessingService{autoApprove: true})

	status, body := postJSON(t, app, "/blessings", fiber.Map{
		"name":    "Ali",
		"message": strings.Repeat("a", 501),
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "500")
}

func TestCreateBlessing_MissingFields(t *testing.T) {
	app := newBlessingTestApp(&fakeBlessingService{autoApprove: true})

	status, _ := postJSON(t, app, "/blessings", fiber.Map{"message": "Tebrikler"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/blessings", fiber.Map{"name": "Ali"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateBlessing_StoreFailure(t *testing.T) {
	app := newBlessingTestApp(&fakeBlessingService{fail: true, autoApprove: true})

	status, body := postJSON(t, app, "/blessings", fiber.Map{
		"name":    "Ali",
		"message": "Tebrikler!",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "error")
}

func TestListBlessings_OnlyApproved(t *testing.T) {
	service := &fakeBlessingService{autoApprove: true}
	app := newBlessingTestApp(service)

	status, _ := postJSON(t, app, "/blessings", fiber.Map{"name": "Ali", "message": "Görünür"})
	require.Equal(t, fiber.StatusCreated, status)

	service.autoApprove = false
	status, _ = postJSON(t, app, "/blessings", fiber.Map{"name": "Ayşe", "message": "Beklemede"})
	require.Equal(t, fiber.StatusCreated, status)

	req := httptest.NewRequest(fiber.MethodGet, "/blessings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Blessing `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Ali", body.Data[0].Name)
}
