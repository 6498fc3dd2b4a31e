package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrTimeout           = errors.New("请求超时")
	ErrSessionTerminated = errors.New("登录已失效")
	ErrMalformedResponse = errors.New("响应格式错误")
)

const (
	DefaultTimeout          = 10 * time.Second
	DefaultInvalidTokenCode = 401001
)

type Config struct {
	BaseURL          string        `yaml:"baseURL"`
	Timeout          time.Duration `yaml:"timeout"`
	InvalidTokenCode int           `yaml:"invalidTokenCode"`
}

func LoadConfig(key string) (Config, error) {
	var cfg Config
	err := econf.UnmarshalKey(key, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("读取客户端配置失败: %w", err)
	}
	return cfg, nil
}

// Terminator token 失效的时候清理登录态
type Terminator interface {
	ForceSignOut()
}

// APIError 服务端返回了错误，调用方自己决定如何处理
type APIError struct {
	Status int
	Code   int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d, code %d: %s", e.Status, e.Code, e.Msg)
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	rc     *resty.Client
	cfg    Config
	term   Terminator
	logger *elog.Component
}

func NewClient(cfg Config, term Terminator) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.InvalidTokenCode == 0 {
		cfg.InvalidTokenCode = DefaultInvalidTokenCode
	}
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{
		rc:     rc,
		cfg:    cfg,
		term:   term,
		logger: elog.DefaultLogger,
	}
}

// HTTPClient 测试的时候用来拦截请求
func (c *Client) HTTPClient() *http.Client {
	return c.rc.GetClient()
}

func (c *Client) Get(ctx context.Context, endpoint, token string, out any) error {
	return c.Do(ctx, http.MethodGet, endpoint, token, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint, token string, body, out any) error {
	return c.Do(ctx, http.MethodPost, endpoint, token, body, out)
}

func (c *Client) Put(ctx context.Context, endpoint, token string, body, out any) error {
	return c.Do(ctx, http.MethodPut, endpoint, token, body, out)
}

func (c *Client) Delete(ctx context.Context, endpoint, token string, body, out any) error {
	return c.Do(ctx, http.MethodDelete, endpoint, token, body, out)
}

// Do 发送请求并且解析 {code, msg, data}，data 解析到 out 里面。
// out 为 nil 的时候忽略 data
func (c *Client) Do(ctx context.Context, method, endpoint, token string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s %s", ErrTimeout, method, endpoint)
		}
		return fmt.Errorf("请求 %s %s 失败: %w", method, endpoint, err)
	}

	status := resp.StatusCode()
	var env envelope
	jsonErr := json.Unmarshal(resp.Body(), &env)

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		if jsonErr == nil && env.Code == c.cfg.InvalidTokenCode {
			if c.term != nil {
				c.term.ForceSignOut()
			}
			return ErrSessionTerminated
		}
		return &APIError{Status: status, Code: env.Code, Msg: env.Msg}
	}
	if status < 200 || status >= 300 {
		return &APIError{Status: status, Code: env.Code, Msg: env.Msg}
	}
	if jsonErr != nil {
		c.logger.Error("无法解析响应",
			elog.String("endpoint", endpoint),
			elog.Int("status", status),
			elog.FieldErr(jsonErr))
		return fmt.Errorf("%w: %s", ErrMalformedResponse, endpoint)
	}
	if env.Code != 0 {
		return &APIError{Status: status, Code: env.Code, Msg: env.Msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err = json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %s, %w", ErrMalformedResponse, endpoint, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
