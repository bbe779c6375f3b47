// Package api talks to the remote task endpoint.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tada/internal/todo"
)

const maxErrorBody = 512

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Code, http.StatusText(e.Code))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New returns a client for the collection at baseURL, for example
// http://localhost:4000/api/todos.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) List(ctx context.Context) ([]todo.Task, error) {
	var tasks []todo.Task
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Create(ctx context.Context, title string) (todo.Task, error) {
	body := struct {
		Title string `json:"title"`
	}{Title: title}
	var t todo.Task
	if err := c.do(ctx, http.MethodPost, c.baseURL, body, &t); err != nil {
		return todo.Task{}, err
	}
	return t, nil
}

func (c *Client) SetCompleted(ctx context.Context, id todo.ID, completed bool) (todo.Task, error) {
	body := struct {
		Completed bool `json:"completed"`
	}{Completed: completed}
	var t todo.Task
	if err := c.do(ctx, http.MethodPut, c.taskURL(id), body, &t); err != nil {
		return todo.Task{}, err
	}
	return t, nil
}

func (c *Client) Delete(ctx context.Context, id todo.ID) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, nil)
}

func (c *Client) taskURL(id todo.ID) string {
	return c.baseURL + "/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "url", target, "err", err)
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("request done", "method", method, "url", target, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := &StatusError{
			Method: method,
			URL:    target,
			Code:   resp.StatusCode,
			Body:   strings.TrimSpace(string(snippet)),
		}
		c.logger.Warn("unexpected status", "method", method, "url", target, "status", resp.StatusCode)
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, target, err)
	}
	return nil
}
