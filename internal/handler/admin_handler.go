package handler

import (
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAdminHandler interface {
	GetAnalyticsReport(c *fiber.Ctx) error
}

type AdminHandler struct {
	adminService service.IAdminService
	tasks        service.ITaskPublisher
}

func NewAdminHandler(adminService service.IAdminService, tasks service.ITaskPublisher) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		tasks:        tasks,
	}
}

//------------------------------------------
//------------------------------------------

// GetAnalyticsReport godoc
//
//	@Summary		Analytics Report
//	@Description	get the cached analytics report. when no report exists yet, generation is queued and 202 is returned.
//	@Tags			Admin
//	@Success		200	{object}	model.AnalyticsReport
//	@Success		202	{object}	response.ResponseOKModel
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/analytics [get]
func (h *AdminHandler) GetAnalyticsReport(c *fiber.Ctx) error {
	report, err := h.adminService.GetAnalyticsReport(c.Context())
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	if report == nil {
		if err = h.tasks.EnqueueTask(model.TaskGenerateAnalyticsReport, nil); err != nil {
			return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
		}
		res := response.ResponseOKModel{
			Code:         fiber.StatusAccepted,
			ErrorMessage: response.ReportNotReady,
		}
		return c.Status(fiber.StatusAccepted).JSON(res)
	}

	return response.ResponseOKWithData(c, report)
}
