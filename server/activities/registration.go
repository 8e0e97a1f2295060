package activities

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// Signup adds email to the participants of activity and returns the server's message.
func (c *Client) Signup(ctx context.Context, activity string, email string) (string, error) {
	return c.register(ctx, http.MethodPost, activity, "signup", email)
}

// Unregister removes email from the participants of activity and returns the server's message.
func (c *Client) Unregister(ctx context.Context, activity string, email string) (string, error) {
	return c.register(ctx, http.MethodDelete, activity, "unregister", email)
}

func (c *Client) register(ctx context.Context, method string, activity string, action string, email string) (string, error) {
	slog.DebugContext(ctx, "Sending registration", slog.String("action", action), slog.String("activity", activity))

	rq, err := http.NewRequestWithContext(ctx, method, RegistrationURL(c.baseURL, activity, action, email), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Accept", "application/json")

	rs, err := c.do(rq)
	if err != nil {
		return "", err
	}
	defer rs.Body.Close()

	logBuf := new(bytes.Buffer)
	bodyReader := io.TeeReader(rs.Body, logBuf)

	if rs.StatusCode < 200 || rs.StatusCode >= 300 {
		var errRs errorResp
		if err = json.NewDecoder(bodyReader).Decode(&errRs); err != nil {
			return "", fmt.Errorf("failed to decode error response: status code: %d: %q: %w", rs.StatusCode, logBuf.String(), err)
		}
		return "", &APIError{
			StatusCode: rs.StatusCode,
			Detail:     detailString(errRs.Detail),
		}
	}

	var msgRs messageResp
	if err = json.NewDecoder(bodyReader).Decode(&msgRs); err != nil {
		return "", fmt.Errorf("failed to decode response: %q: %w", logBuf.String(), err)
	}

	return msgRs.Message, nil
}

// RegistrationURL builds {base}/activities/{activity}/{action}?email={email}
// with the activity name and email percent-encoded.
func RegistrationURL(baseURL string, activity string, action string, email string) string {
	return baseURL + "/activities/" + url.PathEscape(activity) + "/" + action + "?" + url.Values{"email": {email}}.Encode()
}

// detailString only accepts string details; validation errors arrive as lists.
func detailString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(raw, &detail); err != nil {
		return ""
	}
	return detail
}
