package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/engine"
	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractFile(string) (string, error) { return s.text, s.err }

func newTestApp(ext TextExtractor) *fiber.App {
	app := fiber.New()
	h := &Handler{Engine: engine.New(), Extractor: ext, Log: zerolog.Nop()}
	h.Register(app)
	return app
}

type testResponse struct {
	Success      bool                       `json:"success"`
	Error        string                     `json:"error"`
	Transactions []models.Transaction       `json:"transactions"`
	Records      []models.TransactionRecord `json:"records"`
	Summary      models.Summary             `json:"summary"`
}

func decodeResponse(t *testing.T, res *http.Response) testResponse {
	t.Helper()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var out testResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(stubExtractor{})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestHandleProcessText(t *testing.T) {
	app := newTestApp(stubExtractor{})

	form := url.Values{}
	form.Set("text", "01/15/2024 WALMART PURCHASE $45.67\n02/01/2024 PAYROLL DEPOSIT $2500.00 CR\n")
	form.Set("userId", "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/process", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	out := decodeResponse(t, res)
	assert.True(t, out.Success)
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, "2024-01-15", out.Transactions[0].Date)
	assert.Equal(t, models.DirectionIncome, out.Transactions[1].Direction)

	require.Len(t, out.Records, 2)
	assert.Equal(t, "user-1", out.Records[0].UserID)
	assert.Nil(t, out.Records[0].ReceiptID)
}

func TestHandleProcessWithoutUserIDSkipsRecords(t *testing.T) {
	app := newTestApp(stubExtractor{})

	form := url.Values{}
	form.Set("text", "01/15/2024 WALMART PURCHASE $45.67\n")

	req := httptest.NewRequest(http.MethodPost, "/api/process", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := app.Test(req)
	require.NoError(t, err)

	out := decodeResponse(t, res)
	assert.True(t, out.Success)
	assert.Empty(t, out.Records)
}

func TestHandleProcessNoInput(t *testing.T) {
	app := newTestApp(stubExtractor{})

	req := httptest.NewRequest(http.MethodPost, "/api/process", nil)
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	out := decodeResponse(t, res)
	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Error)
	assert.Empty(t, out.Transactions)
}

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/process", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleProcessUpload(t *testing.T) {
	app := newTestApp(stubExtractor{text: "01/15/2024 WALMART PURCHASE $45.67\n"})

	res, err := app.Test(uploadRequest(t, "statement.pdf"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	out := decodeResponse(t, res)
	assert.True(t, out.Success)
	assert.Len(t, out.Transactions, 1)
}

func TestHandleProcessUploadWrongType(t *testing.T) {
	app := newTestApp(stubExtractor{})

	res, err := app.Test(uploadRequest(t, "statement.docx"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHandleProcessExtractionFailure(t *testing.T) {
	app := newTestApp(stubExtractor{err: errors.New("scanned image, no text layer")})

	res, err := app.Test(uploadRequest(t, "statement.pdf"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	out := decodeResponse(t, res)
	assert.False(t, out.Success)
	assert.Empty(t, out.Transactions)
}

func TestHandleProcessUndecodableText(t *testing.T) {
	app := newTestApp(stubExtractor{text: "\xff\xfe garbage"})

	res, err := app.Test(uploadRequest(t, "statement.pdf"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	out := decodeResponse(t, res)
	assert.False(t, out.Success)
	assert.Empty(t, out.Transactions)
}
