package basic

// UserMeta 令牌中携带的身份信息
type UserMeta struct {
	Email string `json:"email"`
}

func (m *UserMeta) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}

// UpdateResult 单文档更新的结果, 未命中时matchedCount为0
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// ErrorResp 认证和授权失败的统一响应体
type ErrorResp struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
