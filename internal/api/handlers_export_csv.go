package api

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclezen/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	handler.mu.Lock()
	cycles := handler.store.GetCycleLogs()
	symptoms := handler.store.GetSymptomLogs()
	handler.mu.Unlock()

	var output bytes.Buffer
	if err := services.WriteHealthDataCSV(&output, cycles, symptoms); err != nil {
		handler.logger.Error("build export failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", services.BuildExportFilename(handler.currentTime()))
	return c.Send(output.Bytes())
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
