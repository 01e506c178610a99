package legacyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"freight_settlement/internal/domain/entities"
	"freight_settlement/internal/infrastructure/config"
	"freight_settlement/internal/infrastructure/metrics"
	"freight_settlement/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	endpointTrips    = "trips.php"
	endpointForms    = "formularios.php"
	endpointExpenses = "save_expense.php"

	opTripsStages      = "get_trips_stages"
	opStageBulk        = "I_pago_stage_bulk"
	opPaymentTicket    = "get_payment_ticket"
	opAuthorizePayment = "authorize_payment"
	opTripExpenses     = "get_trip_expenses"
	opPermissions      = "get_permissions"

	defaultRemoteMessage = "Error en el servidor"
	maxBodyBytes         = 10 << 20
)

// Client talks to the PHP back office: every call is a multipart POST with an
// op field, answered by a {status, message, data|id|row} envelope.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ interfaces.ILegacyAPI        = (*Client)(nil)
	_ interfaces.IPermissionSource = (*Client)(nil)
)

func NewClient(cfg config.Config) *Client {
	return NewClientWithHTTP(cfg.LegacyAPIBaseURL, &http.Client{Timeout: cfg.LegacyAPITimeout})
}

func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *Client) ListTrips(ctx context.Context) ([]entities.Trip, error) {
	env, _, err := c.call(ctx, endpointTrips, opTripsStages, nil)
	if err != nil {
		return nil, err
	}
	var dtos []tripDTO
	if err := decodeData(env.Data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", interfaces.ErrRemoteUnavailable, opTripsStages, err)
	}
	trips := make([]entities.Trip, 0, len(dtos))
	for _, d := range dtos {
		trips = append(trips, d.toEntity())
	}
	return trips, nil
}

func (c *Client) BulkUpdateStagePayments(ctx context.Context, items []entities.StagePaymentPayload) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, _, err = c.call(ctx, endpointForms, opStageBulk, map[string]string{"items": string(raw)})
	return err
}

func (c *Client) GetPaymentTicket(ctx context.Context, tripID string) (entities.PaymentTicketSource, error) {
	_, body, err := c.call(ctx, endpointTrips, opPaymentTicket, map[string]string{"trip_id": tripID})
	if err != nil {
		return entities.PaymentTicketSource{}, err
	}
	var resp ticketResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return entities.PaymentTicketSource{}, fmt.Errorf("%w: decode %s: %v", interfaces.ErrRemoteUnavailable, opPaymentTicket, err)
	}
	return resp.toSource(tripID), nil
}

func (c *Client) AuthorizePaymentTicket(ctx context.Context, a entities.TicketAuthorization) (string, json.RawMessage, error) {
	fields, err := authorizationFields(a)
	if err != nil {
		return "", nil, err
	}
	env, body, err := c.call(ctx, endpointTrips, opAuthorizePayment, fields)
	if err != nil {
		return "", nil, err
	}
	return string(env.ID), body, nil
}

func (c *Client) ListTripExpenses(ctx context.Context, tripID string) ([]entities.TripExpense, error) {
	env, _, err := c.call(ctx, endpointExpenses, opTripExpenses, map[string]string{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	var dtos []expenseDTO
	if err := decodeData(env.Data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", interfaces.ErrRemoteUnavailable, opTripExpenses, err)
	}
	out := make([]entities.TripExpense, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func (c *Client) GetPermissions(ctx context.Context, token string) (entities.Permissions, error) {
	env, _, err := c.call(ctx, endpointForms, opPermissions, map[string]string{"token": token})
	if err != nil {
		return entities.Permissions{}, err
	}
	var dto permissionsDTO
	if err := decodeData(env.Data, &dto); err != nil {
		return entities.Permissions{}, fmt.Errorf("%w: decode %s: %v", interfaces.ErrRemoteUnavailable, opPermissions, err)
	}
	grants := dto.Permissions
	if grants == nil {
		grants = []string{}
	}
	return entities.Permissions{User: string(dto.User), Grants: grants}, nil
}

// call posts the form and classifies the outcome: transport or decoding
// problems wrap ErrRemoteUnavailable, a non-success status becomes a
// RemoteError with the remote message.
func (c *Client) call(ctx context.Context, endpoint, op string, fields map[string]string) (envelope, []byte, error) {
	start := time.Now()
	entry := log.WithFields(log.Fields{"endpoint": endpoint, "op": op})
	defer func() {
		metrics.LegacyAPIDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	body, contentType, err := encodeForm(op, fields)
	if err != nil {
		return envelope{}, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return envelope{}, nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.LegacyAPIRequests.WithLabelValues(op, metrics.OutcomeError).Inc()
		entry.WithError(err).Warn("[legacy][client] request failed")
		return envelope{}, nil, fmt.Errorf("%w: %s: %v", interfaces.ErrRemoteUnavailable, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.LegacyAPIRequests.WithLabelValues(op, metrics.OutcomeError).Inc()
		return envelope{}, nil, fmt.Errorf("%w: %s: read body: %v", interfaces.ErrRemoteUnavailable, op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.LegacyAPIRequests.WithLabelValues(op, metrics.OutcomeError).Inc()
		entry.WithField("http_status", resp.StatusCode).Warn("[legacy][client] unexpected http status")
		return envelope{}, nil, fmt.Errorf("%w: %s: http %d", interfaces.ErrRemoteUnavailable, op, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		metrics.LegacyAPIRequests.WithLabelValues(op, metrics.OutcomeError).Inc()
		entry.WithError(err).Warn("[legacy][client] response is not json")
		return envelope{}, nil, fmt.Errorf("%w: %s: invalid json: %v", interfaces.ErrRemoteUnavailable, op, err)
	}
	if !env.ok() {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = defaultRemoteMessage
		}
		metrics.LegacyAPIRequests.WithLabelValues(op, metrics.OutcomeRejected).Inc()
		entry.WithField("message", msg).Info("[legacy][client] remote rejected request")
		return env, raw, &interfaces.RemoteError{Op: op, Message: msg}
	}

	metrics.LegacyAPIRequests.WithLabelValues(op, metrics.OutcomeSuccess).Inc()
	entry.WithField("elapsed", time.Since(start)).Debug("[legacy][client] ok")
	return env, raw, nil
}

func encodeForm(op string, fields map[string]string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if err := w.WriteField("op", op); err != nil {
		return nil, "", err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// decodeData treats a missing or null data field as empty.
func decodeData(data json.RawMessage, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, v)
}
