package handler

import (
	"booking-service/internal/model"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestCreateBooking(t *testing.T) {
	ts := newTestServer()
	token := ts.token(t)

	rec := ts.do(http.MethodPost, "/api/bookings",
		`{"checkIn":"2025-06-01","checkOut":"2025-06-05T11:00:00Z","guests":2,"totalPrice":400}`, token)
	expectStatus(t, rec, http.StatusCreated)

	var resp map[string]interface{}
	decode(t, rec, &resp)
	if resp["status"] != "pending" {
		t.Errorf("Expected default status pending, got %v", resp["status"])
	}
	if resp["id"] != float64(1) {
		t.Errorf("Expected id 1, got %v", resp["id"])
	}

	if len(ts.bookings.bookings) != 1 {
		t.Fatalf("Expected one stored booking, got %d", len(ts.bookings.bookings))
	}
	b := ts.bookings.bookings[0]
	if !b.CheckIn.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected check-in %v", b.CheckIn)
	}
	if b.Guests != 2 || b.TotalPrice != 400 {
		t.Errorf("Unexpected booking %+v", b)
	}
}

func TestCreateBooking_ExplicitStatus(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodPost, "/api/bookings",
		`{"checkIn":"2025-06-01","checkOut":"2025-06-05","guests":1,"totalPrice":90.5,"status":"confirmed"}`, ts.token(t))
	expectStatus(t, rec, http.StatusCreated)

	if got := ts.bookings.bookings[0].Status; got != model.BookingStatusConfirmed {
		t.Errorf("Expected confirmed, got %s", got)
	}
}

func TestCreateBooking_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"missing checkIn", `{"checkOut":"2025-06-05","guests":2,"totalPrice":400}`, http.StatusInternalServerError},
		{"missing guests", `{"checkIn":"2025-06-01","checkOut":"2025-06-05","totalPrice":400}`, http.StatusInternalServerError},
		{"missing totalPrice", `{"checkIn":"2025-06-01","checkOut":"2025-06-05","guests":2}`, http.StatusInternalServerError},
		{"unknown status", `{"checkIn":"2025-06-01","checkOut":"2025-06-05","guests":2,"totalPrice":400,"status":"lost"}`, http.StatusInternalServerError},
		{"bad date", `{"checkIn":"June first","checkOut":"2025-06-05","guests":2,"totalPrice":400}`, http.StatusInternalServerError},
		{"numeric date", `{"checkIn":20250601,"checkOut":"2025-06-05","guests":2,"totalPrice":400}`, http.StatusInternalServerError},
		{"guests as text", `{"checkIn":"2025-06-01","checkOut":"2025-06-05","guests":"two","totalPrice":400}`, http.StatusInternalServerError},
		{"malformed", `{"checkIn":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			rec := ts.do(http.MethodPost, "/api/bookings", tt.body, ts.token(t))
			expectStatus(t, rec, tt.wantStatus)

			if len(ts.bookings.bookings) != 0 {
				t.Error("Expected no booking to be stored")
			}
			if tt.wantStatus == http.StatusInternalServerError {
				var resp map[string]interface{}
				decode(t, rec, &resp)
				if resp["message"] != "Error creating booking" {
					t.Errorf("Unexpected message: %v", resp["message"])
				}
			}
		})
	}
}

func TestCreateBooking_RequiresAuth(t *testing.T) {
	ts := newTestServer()

	rec := ts.do(http.MethodPost, "/api/bookings",
		`{"checkIn":"2025-06-01","checkOut":"2025-06-05","guests":2,"totalPrice":400}`, "")
	expectStatus(t, rec, http.StatusUnauthorized)

	if len(ts.bookings.bookings) != 0 {
		t.Error("Expected no booking to be stored")
	}
}

func TestCreateBooking_StoreError(t *testing.T) {
	ts := newTestServer()
	ts.bookings.err = errors.New("check constraint violated")

	rec := ts.do(http.MethodPost, "/api/bookings",
		`{"checkIn":"2025-06-01","checkOut":"2025-06-05","guests":2,"totalPrice":400}`, ts.token(t))
	expectStatus(t, rec, http.StatusInternalServerError)
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{`"2025-06-01"`, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{`"2025-06-01T10:30:00"`, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), false},
		{`"2025-06-01T10:30:00.5Z"`, time.Date(2025, 6, 1, 10, 30, 0, 5e8, time.UTC), false},
		{`"01/06/2025"`, time.Time{}, true},
		{`20250601`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var ts Timestamp
			err := ts.UnmarshalJSON([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !tt.wantErr && !ts.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, ts.Time)
			}
		})
	}
}

func TestHomeAndHealth(t *testing.T) {
	ts := newTestServer()
	ts.e.GET("/health", HealthCheck)

	rec := ts.do(http.MethodGet, "/", "", "")
	expectStatus(t, rec, http.StatusOK)
	if rec.Body.String() != "Booking API is running" {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}

	rec = ts.do(http.MethodGet, "/health", "", "")
	expectStatus(t, rec, http.StatusOK)
}

func TestFieldTypeError(t *testing.T) {
	var ts Timestamp
	dateErr := ts.UnmarshalJSON([]byte(`"June first"`))
	numberErr := ts.UnmarshalJSON([]byte(`20250601`))

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unparseable date", dateErr, true},
		{"number for date", numberErr, true},
		{"bind wrapped", echo.NewHTTPError(http.StatusBadRequest).SetInternal(dateErr), true},
		{"syntax", &json.SyntaxError{}, false},
		{"truncated", io.ErrUnexpectedEOF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldTypeError(tt.err); got != tt.want {
				t.Errorf("Expected %v, got %v for %v", tt.want, got, tt.err)
			}
		})
	}
}
