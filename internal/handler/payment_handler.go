package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/service"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// PaymentHandler handles the payment HTTP endpoints.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Process handles POST /payments/process
func (h *PaymentHandler) Process(c *gin.Context) {
	var req service.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}

	result, err := h.paymentService.Process(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !result.Success {
		utils.Error(c, 400, "PAYMENT_FAILED", result.Message)
		return
	}
	utils.Success(c, 200, result.Message, result)
}

// Verify handles GET /payments/verify?reference=
func (h *PaymentHandler) Verify(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		utils.Error(c, 400, "MISSING_FIELD", "reference is required")
		return
	}

	payment, err := h.paymentService.Verify(c.Request.Context(), reference)
	if err != nil {
		h.handleError(c, err)
		return
	}
	utils.Success(c, 200, "Payment retrieved", payment)
}

// History handles GET /payments/history?page=&limit=&status=
func (h *PaymentHandler) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	filter := &repository.HistoryFilter{Page: page, Limit: limit}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.paymentService.History(filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Payment history retrieved",
		result.Payments, result.Page, result.Limit, result.TotalItems)
}

// Export handles GET /payments/export?start_date=&end_date=&format=
func (h *PaymentHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		utils.Error(c, 400, "INVALID_EXPORT_FORMAT", "format must be csv or json")
		return
	}

	var startDate, endDate *string
	if v := c.Query("start_date"); v != "" {
		startDate = &v
	}
	if v := c.Query("end_date"); v != "" {
		endDate = &v
	}

	payments, err := h.paymentService.Export(startDate, endDate)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if format == "json" {
		utils.Success(c, 200, "Payments exported", gin.H{"payments": payments})
		return
	}

	csvData, err := service.BuildPaymentsCSV(payments)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	c.Data(200, "text/csv", []byte(csvData))
}

func (h *PaymentHandler) handleError(c *gin.Context, err error) {
	switch err {
	case utils.ErrMissingField:
		utils.Error(c, 400, "MISSING_FIELD", "Missing required payment fields")
	case utils.ErrInvalidAmount:
		utils.Error(c, 400, "INVALID_AMOUNT", "Amount must be greater than zero")
	case utils.ErrInvalidEmail:
		utils.Error(c, 400, "INVALID_EMAIL", "Invalid customer email")
	case utils.ErrUnsupportedMethod:
		utils.Error(c, 400, "UNSUPPORTED_METHOD", "Unsupported payment method")
	case utils.ErrPaymentNotFound:
		utils.Error(c, 404, "PAYMENT_NOT_FOUND", "Payment not found")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
	}
}
