package deepseek

import "time"

// Vendor selects the defaults applied by Config.Validate
type Vendor string

const (
	VendorDeepSeek Vendor = "deepseek"
	VendorQwen     Vendor = "qwen"
)

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"

	// DashScope compatible mode
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	QwenModel   = "qwen-plus"

	DefaultTimeout = 60 * time.Second

	completionsPath = "/chat/completions"
	maxErrorBody    = 512
)
