package emoji

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"unipick/feature/emoji/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, mock := setupMockDB(t)
	svc := NewService(zap.NewNop(), db)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mock
}

func TestHandleList(t *testing.T) {
	app, mock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"group_name", "subgroup_name", "emoji", "name"})
	rows.AddRow("Smileys & Emotion", "face-smiling", "😀", "grinning face")
	mock.ExpectQuery("SELECT `group_name`,`subgroup_name`,`emoji`,`name` FROM `emojis`").WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/emojis/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []models.Listing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "😀", body[0].Emoji)
	assert.Equal(t, "Smileys & Emotion", body[0].GroupName)
}

func TestHandleList_QueryError(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery("SELECT `group_name`,`subgroup_name`,`emoji`,`name` FROM `emojis`").
		WillReturnError(assert.AnError)

	req := httptest.NewRequest("GET", "/emojis/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
