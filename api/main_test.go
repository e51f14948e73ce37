package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	db "github.com/King0lightai/JT-Power-Tools-sub005/db/sqlc"
	"github.com/King0lightai/JT-Power-Tools-sub005/notetext"
	"github.com/King0lightai/JT-Power-Tools-sub005/tmpstore"
	"github.com/King0lightai/JT-Power-Tools-sub005/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	gin.SetMode(gin.TestMode)
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress: "http://localhost:8080",
	AllowedOrigins:    []string{"http://localhost:3000"},
	PreviewCacheTTL:   time.Minute,
	MaxNoteBytes:      1024,
}

func newTestService(t *testing.T, store db.Store, cache tmpstore.Store) *Service {
	service, err := NewService(testConfig, store, cache, notetext.New())
	require.NoError(t, err)
	return service
}

// serveJSON sends body (when not nil) as JSON to the service router.
func serveJSON(t *testing.T, service *Service, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	service.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&v))
	return v
}

func requireErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, status int, wantErr error, wantField string) {
	t.Helper()

	require.Equal(t, status, recorder.Code)
	res, err := extractErrorFromBuffer(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, wantErr.Error(), res.Error)

	if wantField == "" {
		return
	}
	require.NotEmpty(t, res.Fields)
	require.Equal(t, wantField, res.Fields[0].FieldName)
}

func randomNote() db.Note {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return db.Note{
		ID:        uuid.New(),
		Title:     util.RandomNoteTitle(),
		Body:      util.RandomMarkup(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
