package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
	"github.com/nailyse/salon-api/internal/core/service"
)

// PaymentHandler exposes the checkout endpoints. Both are public: the cart
// lives entirely in the frontend and no order is ever persisted.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(s ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

type orderItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type createSessionRequest struct {
	Items []orderItemRequest `json:"items"`
}

type createSessionResponse struct {
	URL string `json:"url"`
}

type confirmRequest struct {
	SessionID  string             `json:"sessionId"`
	Email      string             `json:"email"`
	ClientName string             `json:"clientName"`
	Items      []orderItemRequest `json:"items"`
	Language   string             `json:"language"`
}

type confirmResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func toOrderItems(in []orderItemRequest) []ports.OrderItem {
	items := make([]ports.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, ports.OrderItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	return items
}

// CreateSession handles POST /api/payment/create-session.
//
// @Summary      Create a checkout session
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      createSessionRequest  true  "Cart items"
// @Success      200   {object}  createSessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/payment/create-session [post]
func (h *PaymentHandler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid payload"})
	}

	url, err := h.service.CreateSession(c.Request().Context(), toOrderItems(req.Items))
	if errors.Is(err, domain.ErrEmptyCart) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Cart is empty"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, createSessionResponse{URL: url})
}

// Confirm handles POST /api/payment/confirm.
//
// @Summary      Confirm a paid order
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      confirmRequest  true  "Order recap"
// @Success      200   {object}  confirmResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  confirmResponse
// @Router       /api/payment/confirm [post]
func (h *PaymentHandler) Confirm(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid payload"})
	}

	msg, err := h.service.Confirm(c.Request().Context(), ports.ConfirmPaymentInput{
		SessionID:  req.SessionID,
		Email:      req.Email,
		ClientName: req.ClientName,
		Items:      toOrderItems(req.Items),
		Language:   req.Language,
	})
	if errors.Is(err, domain.ErrMissingPaymentData) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing required data"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, confirmResponse{
			Success: false,
			Error:   service.ConfirmErrorMessage(req.Language),
		})
	}
	return c.JSON(http.StatusOK, confirmResponse{Success: true, Message: msg})
}
