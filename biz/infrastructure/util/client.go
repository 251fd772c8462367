package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"course-select/biz/infrastructure/config"
	"course-select/biz/infrastructure/consts"
	"course-select/biz/infrastructure/util/log"

	"github.com/mitchellh/mapstructure"
)

// HttpClient 是一个简单的 HTTP 客户端
type HttpClient struct {
	Client *http.Client
	Config *config.Config
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient(config *config.Config) *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
		Config: config,
	}
}

// PaymentIntent 支付网关返回的意向单
type PaymentIntent struct {
	ID           string `mapstructure:"id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// CreatePaymentIntent 调用支付网关创建支付意向, amount为最小货币单位
func (c *HttpClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error) {
	headers := map[string]string{
		consts.AuthorizationHeader: consts.BearerPrefix + c.Config.Payment.SecretKey,
		"Content-Type":             consts.ContentTypeJson,
	}
	body := map[string]any{
		"amount":               amount,
		"currency":             currency,
		"payment_method_types": []string{"card"},
	}

	response, err := c.SendRequest(ctx, http.MethodPost, c.Config.Payment.IntentURL, headers, body)
	if err != nil {
		return nil, err
	}

	intent := new(PaymentIntent)
	if err := mapstructure.Decode(response, intent); err != nil {
		return nil, err
	}
	if intent.ClientSecret == "" {
		return nil, consts.ErrPaymentIntent
	}
	return intent, nil
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body any) (map[string]any, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body failed: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	// 设置请求头
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// 发送请求
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("close response body failed: %v", closeErr)
		}
	}()

	// 读取响应
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	var result map[string]any
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return result, nil
}
