package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/dermacare/booking-api/internal/model"
	"github.com/dermacare/booking-api/pkg/circuitbreaker"
)

// APIError is a non-2xx response from the scheduling API. Detail carries the
// server's error message when it sent one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("scheduling API returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("scheduling API returned %d", e.StatusCode)
}

// Client is a typed HTTP client for the scheduling REST API.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
	logger  zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "scheduling-api",
			MaxRequests: 5,
			Interval:    30 * time.Second,
			Timeout:     15 * time.Second,
		}),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BookedSlots returns the reserved slot labels for one (doctor, date) pair.
// The date must be wire-formatted (yyyy-MM-dd).
func (c *Client) BookedSlots(ctx context.Context, doctorID int64, date string) ([]string, error) {
	q := url.Values{}
	q.Set("doctor_id", strconv.FormatInt(doctorID, 10))
	q.Set("date", date)

	var resp model.BookedSlotsResponse
	if err := c.do(ctx, http.MethodGet, "/getAvailableSlots", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.BookedSlots, nil
}

// BookAppointment creates one appointment. Conflicts and validation
// rejections come back as *APIError with the server's detail.
func (c *Client) BookAppointment(ctx context.Context, req model.BookAppointmentRequest) (*model.BookingConfirmation, error) {
	var conf model.BookingConfirmation
	if err := c.do(ctx, http.MethodPost, "/bookAppointment", nil, req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Appointments lists a patient's upcoming and past appointments.
func (c *Client) Appointments(ctx context.Context, email string) (*model.AppointmentList, error) {
	q := url.Values{}
	q.Set("email", email)

	var list model.AppointmentList
	if err := c.do(ctx, http.MethodGet, "/getAppointments", q, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CancelAppointment cancels by server-generated appointment id and returns
// the server's confirmation message.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID int64) (string, error) {
	q := url.Values{}
	q.Set("appointment_id", strconv.FormatInt(appointmentID, 10))

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/cancelAppointment", q, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Doctors queries the doctor directory by city.
func (c *Client) Doctors(ctx context.Context, city string) ([]model.Doctor, error) {
	q := url.Values{}
	q.Set("city", city)

	var resp struct {
		Doctors []model.Doctor `json:"doctors"`
	}
	if err := c.do(ctx, http.MethodGet, "/getDoctors", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Doctors, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	raw, err := c.cb.Execute(func() (interface{}, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			apiErr := &APIError{StatusCode: resp.StatusCode}
			var detail struct {
				Detail string `json:"detail"`
			}
			if err := json.Unmarshal(data, &detail); err == nil {
				apiErr.Detail = detail.Detail
			}
			return nil, apiErr
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(raw.([]byte), out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
