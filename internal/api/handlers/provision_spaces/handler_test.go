package provision_spaces

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	provisionSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_spaces"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *provisionSpaces.Response
	err  error

	gotReq *provisionSpaces.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *provisionSpaces.Request) (*provisionSpaces.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/areas/{areaId}/spaces/bulk", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	body := []byte(`{"prefix": "A", "startNumber": 1, "endNumber": 5}`)

	t.Run("успешная пачка возвращает 201", func(t *testing.T) {
		uc := &fakeUseCase{resp: &provisionSpaces.Response{Created: 4, Skipped: 1}}

		rec := doRequest(t, uc, "/api/v1/areas/3/spaces/bulk", body)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp ProvisionSpacesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Created)
		assert.Equal(t, 1, resp.Skipped)

		// areaID берется из пути
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(3), uc.gotReq.AreaID)
		assert.Equal(t, "A", uc.gotReq.Prefix)
	})

	t.Run("нечисловой areaId возвращает 400", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "/api/v1/areas/abc/spaces/bulk", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("маппинг ошибок use case на статусы", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode int
		}{
			{"невалидный ввод", provisionSpaces.ErrInvalidInput, http.StatusBadRequest},
			{"зона не найдена", provisionSpaces.ErrAreaNotFound, http.StatusNotFound},
			{"слишком большой диапазон", provisionSpaces.ErrRangeTooLarge, http.StatusBadRequest},
			{"превышен потолок", provisionSpaces.ErrCapacityExceeded, http.StatusConflict},
			{"внутренняя ошибка", provisionSpaces.ErrInternal, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doRequest(t, &fakeUseCase{err: tt.err}, "/api/v1/areas/3/spaces/bulk", body)
				assert.Equal(t, tt.wantCode, rec.Code)
			})
		}
	})
}
