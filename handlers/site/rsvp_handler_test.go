package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}

// fakeRSVPService bellek içi IRSVPService; fail ile store hatası taklit edilir.
type fakeRSVPService struct {
	rsvps  []models.RSVP
	nextID uint
	fail   bool
}

func (f *fakeRSVPService) SubmitRSVP(ctx context.Context, input services.RSVPInput) (*models.RSVP, error) {
	rsvp, err := services.ValidateRSVP(input)
	if err != nil {
		return nil, err
	}
	if f.fail {
		return nil, services.ErrRSVPCreationFailed
	}
	f.nextID++
	rsvp.ID = f.nextID
	f.rsvps = append([]models.RSVP{*rsvp}, f.rsvps...)
	return rsvp, nil
}

func (f *fakeRSVPService) ListRSVPs(ctx context.Context) ([]models.RSVP, error) {
	if f.fail {
		return nil, services.ErrRSVPListFailed
	}
	return f.rsvps, nil
}

func (f *fakeRSVPService) ListRSVPsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if f.fail {
		return nil, services.ErrRSVPListFailed
	}
	params.Validate()
	return &queryparams.PaginatedResult{
		Data: f.rsvps,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  int64(len(f.rsvps)),
			TotalPages:  queryparams.CalculateTotalPages(int64(len(f.rsvps)), params.PerPage),
		},
	}, nil
}

func (f *fakeRSVPService) GetStats(ctx context.Context) (models.Stats, error) {
	if f.fail {
		return models.Stats{}, services.ErrRSVPListFailed
	}
	return services.ComputeStats(f.rsvps), nil
}

func newRSVPTestApp(service services.IRSVPService) *fiber.App {
	app := fiber.New()
	handler := NewRSVPHandlerWithService(service)
	app.Post("/rsvp", handler.CreateRSVP)
	app.Get("/rsvp", handler.ListRSVPs)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestCreateRSVP_Success(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{})

	status, body := postJSON(t, app, "/rsvp", fiber.Map{
		"name":        "  Alice  ",
		"guest_count": 2,
		"attendance":  "attending",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, body, "message")

	data := body["data"].(map[string]any)
	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, float64(2), data["guest_count"])
	assert.NotZero(t, data["id"])
}

func TestCreateRSVP_InvalidGuestCount(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{})

	status, body := postJSON(t, app, "/rsvp", fiber.Map{
		"name":        "Ali",
		"guest_count": 3,
		"attendance":  "attending",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "misafir sayısı")
}

func TestCreateRSVP_MissingName(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{})

	status, body := postJSON(t, app, "/rsvp", fiber.Map{
		"guest_count": 1,
		"attendance":  "attending",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "isim")
}

func TestCreateRSVP_InvalidAttendance(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{})

	status, _ := postJSON(t, app, "/rsvp", fiber.Map{
		"name":        "Ali",
		"guest_count": 1,
		"attendance":  "maybe",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateRSVP_StoreFailure(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{fail: true})

	status, body := postJSON(t, app, "/rsvp", fiber.Map{
		"name":        "Ali",
		"guest_count": 1,
		"attendance":  "attending",
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "error")
}

func TestCreateRSVP_MalformedBody(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{})

	req := httptest.NewRequest(fiber.MethodPost, "/rsvp", bytes.NewReader([]byte("{bozuk")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListRSVPs_NewestFirst(t *testing.T) {
	service := &fakeRSVPService{}
	app := newRSVPTestApp(service)

	for _, name := range []string{"Birinci", "İkinci"} {
		status, _ := postJSON(t, app, "/rsvp", fiber.Map{
			"name":        name,
			"guest_count": 1,
			"attendance":  "attending",
		})
		require.Equal(t, fiber.StatusCreated, status)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/rsvp", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.RSVP `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "İkinci", body.Data[0].Name)
	assert.Equal(t, "Birinci", body.Data[1].Name)
}
