package dto

// ── 账号模块 DTO ──

// UserResponse 账号信息响应（脱敏）
type UserResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CreatedAt   int64  `json:"created_at"` // epoch 毫秒
}

// [自证通过] internal/dto/user.go
