package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/usell/billing/internal/errors"
	"github.com/usell/billing/internal/logger"
	"github.com/usell/billing/internal/service"
	"github.com/usell/billing/internal/types"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportService service.InvoiceExportService
	logger        *logger.Logger
}

func NewExportHandler(
	exportService service.InvoiceExportService,
	logger *logger.Logger,
) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// GetInvoiceExcel godoc
// @Summary Get the Excel report for an invoice
// @Description Generate and download the invoice workbook by invoice ID
// @Tags Invoices
// @Param id path string true "Invoice ID"
// @Param viewer query string false "Viewer context (partner or buyer)"
// @Success 200 {file} application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /invoices/{id}/excel [get]
func (h *ExportHandler) GetInvoiceExcel(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid invoice id").
			WithHint("invalid invoice id").
			Mark(ierr.ErrValidation))
		return
	}

	viewer := types.ParseViewerContext(c.Query("viewer"))

	filename, err := h.exportService.ExportFilename(c.Request.Context(), id)
	if err != nil {
		h.logger.Errorw("failed to resolve invoice export filename", "error", err, "invoice_id", id)
		c.Error(err)
		return
	}

	// Render into a buffer so a failed export never leaks a partial workbook
	var buf bytes.Buffer
	if err := h.exportService.ExportInvoiceExcel(c.Request.Context(), id, viewer, &buf); err != nil {
		h.logger.Errorw("failed to export invoice workbook", "error", err, "invoice_id", id, "viewer", viewer)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, excelContentType, buf.Bytes())
}
