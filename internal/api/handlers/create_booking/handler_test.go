package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func validBody() []byte {
	return []byte(`{
		"vehicleId": 10,
		"slotNumber": "42",
		"date": "2026-03-10",
		"startTime": "09:00",
		"endTime": "11:00"
	}`)
}

func doRequest(t *testing.T, uc *fakeUseCase, body []byte, userID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("успешное создание возвращает 201", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{
			ID:          1,
			VehicleID:   10,
			SpaceID:     5,
			SpaceNumber: "42",
			StartTime:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
			Status:      "pending",
			QRCodeURL:   "https://parking.example/bookings/confirm?slot=42",
			CreatedAt:   time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		}}

		rec := doRequest(t, uc, validBody(), "7")

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "42", resp.SpaceNumber)
		assert.Equal(t, "pending", resp.Status)

		// userID берется из заголовка, не из тела
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(7), uc.gotReq.UserID)
	})

	t.Run("без X-User-ID возвращает 401", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, validBody(), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("битый JSON возвращает 400", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, []byte(`{not json`), "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("некорректная дата возвращает 400", func(t *testing.T) {
		body := []byte(`{"vehicleId": 10, "slotNumber": "42", "date": "10.03.2026", "startTime": "09:00", "endTime": "11:00"}`)
		rec := doRequest(t, &fakeUseCase{}, body, "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("маппинг ошибок use case на статусы", func(t *testing.T) {
		tests := []struct {
			name     string
			err      error
			wantCode int
		}{
			{"невалидный ввод", createBooking.ErrInvalidInput, http.StatusBadRequest},
			{"транспорт не найден", createBooking.ErrVehicleNotFound, http.StatusNotFound},
			{"транспорт не одобрен", createBooking.ErrVehicleNotApproved, http.StatusUnprocessableEntity},
			{"некорректный слот", createBooking.ErrInvalidSlot, http.StatusBadRequest},
			{"зоны не настроены", createBooking.ErrNoAreasDefined, http.StatusInternalServerError},
			{"потолок количества мест", createBooking.ErrCapacityExceeded, http.StatusConflict},
			{"время в прошлом", createBooking.ErrPastStartTime, http.StatusBadRequest},
			{"конфликт интервалов", createBooking.ErrTimeConflict, http.StatusConflict},
			{"внутренняя ошибка", createBooking.ErrInternal, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody(), "7")
				assert.Equal(t, tt.wantCode, rec.Code)
			})
		}
	})
}
