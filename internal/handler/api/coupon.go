package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "membership-backoffice/internal/handler/dto/request"
	resdto "membership-backoffice/internal/handler/dto/response"
	"membership-backoffice/internal/handler/httperr"
	"membership-backoffice/internal/pkg/dedupe"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	provisioner    commands.CouponProvisioner
	couponCommands commands.CouponCommands
	couponQueries  queries.CouponQueries
}

func NewCouponHandler(provisioner commands.CouponProvisioner, couponCommands commands.CouponCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		provisioner:    provisioner,
		couponCommands: couponCommands,
		couponQueries:  couponQueries,
	}
}

// @Summary Provision coupon
// @Description Create a discount rule and code on the commerce platform and persist the coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon request"
// @Success 201 {object} resdto.ProvisionResponse
// @Success 202 {object} resdto.ProvisionResponse "Rule created but code attachment pending"
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	result, err := h.provisioner.ProvisionCoupon(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, dedupe.ErrDuplicateRequest):
			httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate provision request, retry later", "")
		case errors.Is(err, commands.ErrInvalidCouponSpec):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon parameters", "")
		case errors.Is(err, commands.ErrProvisioningFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Commerce platform rejected the request", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	status := http.StatusCreated
	if result.Orphaned {
		// Rule exists upstream but the code never attached; surfaced as
		// accepted-pending so the operator does not retry blindly.
		status = http.StatusAccepted
	}
	c.JSON(status, resdto.FromProvisionResult(result))
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param customer_id query string false "Filter by customer"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CouponListResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var filter queries.CouponListFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", "")
			return
		}
		filter.CustomerID = &customerID
	}

	var after *queries.Cursor
	if cursor := c.Query("after"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.couponQueries.List(c.Request.Context(), filter, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}

	resp := resdto.CouponListResponse{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {object} queries.CouponView
// @Failure 404 {object} map[string]string
// @Router /coupons/{code} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	view, err := h.couponQueries.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List coupon uses
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {array} queries.CouponUseView
// @Failure 404 {object} map[string]string
// @Router /coupons/{code}/uses [get]
func (h *CouponHandler) ListUses(c *gin.Context) {
	uses, err := h.couponQueries.ListUses(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, queries.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	if uses == nil {
		uses = []*queries.CouponUseView{}
	}
	c.JSON(http.StatusOK, uses)
}

// @Summary Validate coupon
// @Description Check whether a coupon is currently redeemable
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} resdto.ValidateResponse
// @Failure 400 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	result, err := h.couponCommands.Validate(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

// @Summary Redeem coupon
// @Description Consume one use of a coupon for a customer order
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCouponRequest true "Redemption request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	result, err := h.couponCommands.Redeem(c.Request.Context(), commands.RedeemParams{
		Code:             req.Code,
		CustomerID:       req.CustomerID,
		OrderRef:         req.OrderRef,
		OrderAmountCents: req.OrderAmountCents,
	})
	if err != nil {
		var redemptionErr *commands.RedemptionError
		switch {
		case errors.As(err, &redemptionErr):
			if redemptionErr.Reason == commands.ReasonNotFound {
				httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", string(redemptionErr.Reason))
				return
			}
			status := http.StatusUnprocessableEntity
			if redemptionErr.Reason == commands.ReasonUsageExceeded {
				status = http.StatusConflict
			}
			httperr.AbortWithError(c, status, err, "Coupon is not redeemable", string(redemptionErr.Reason))
		case errors.Is(err, commands.ErrMinimumPurchaseNotMet):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order amount below minimum purchase", "minimum_purchase_not_met")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary Update coupon status
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponStatusRequest true "Status request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id}/status [patch]
func (h *CouponHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID format", "")
		return
	}

	var req reqdto.UpdateCouponStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", "")
		return
	}

	if err := h.couponCommands.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", "")
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon status", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete coupon
// @Description Delete a coupon, removing its external rule best-effort first
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon ID format", "")
		return
	}

	if err := h.couponCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}
	c.Status(http.StatusNoContent)
}
