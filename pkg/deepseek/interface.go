package deepseek

import "context"

// IDeepSeek is an OpenAI-compatible chat completion client.
// DeepSeek and Qwen (DashScope compatible mode) both speak it.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
	Vendor() Vendor
}
