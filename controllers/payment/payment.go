package paymentControllers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	couponControllers "github.com/Ross563/e-commerse-store/controllers/coupon"
	orderControllers "github.com/Ross563/e-commerse-store/controllers/order"
	"github.com/Ross563/e-commerse-store/middleware"
	"github.com/Ross563/e-commerse-store/models"
	"github.com/Ross563/e-commerse-store/payments"
)

const (
	checkoutCurrency = "usd"
	// Pre-discount gross (minor units) at which a confirmed purchase earns a
	// reward coupon.
	couponRewardThreshold = 20000
)

type CheckoutProduct struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

type CreateCheckoutSessionRequest struct {
	Products   []CheckoutProduct `json:"products"`
	CouponCode string            `json:"couponCode"`
}

type CheckoutSuccessRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// minorUnits converts a major-unit price to integer minor units (cents), the
// representation used for all checkout arithmetic.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// POST /api/payments/checkout
//
// Phase 1 of the checkout flow: price the client-supplied cart lines, apply
// the user's coupon when it validates (coupon failure is non-fatal), and ask
// the processor for a hosted session. The session metadata carries the priced
// cart snapshot; until the payment confirms, the processor is the source of
// truth for this purchase.
func CreateCheckoutSession(db *gorm.DB, gw payments.Gateway, clientURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		var req CreateCheckoutSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Products) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty products array"})
			return
		}

		var total int64
		lineItems := make([]payments.LineItem, 0, len(req.Products))
		snapshot := make([]models.OrderLine, 0, len(req.Products))
		for _, p := range req.Products {
			if p.Quantity < 0 || p.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or empty products array"})
				return
			}
			quantity := p.Quantity
			if quantity == 0 {
				quantity = 1
			}

			amount := minorUnits(p.Price)
			total += amount * int64(quantity)

			lineItems = append(lineItems, payments.LineItem{
				Name:       p.Name,
				Image:      p.Image,
				UnitAmount: amount,
				Quantity:   int64(quantity),
			})
			snapshot = append(snapshot, models.OrderLine{
				ProductID: p.ID,
				Quantity:  quantity,
				Price:     p.Price,
			})
		}

		var discountPercent float64
		if req.CouponCode != "" {
			coupon, err := couponControllers.FindValid(db, user.ID, req.CouponCode)
			if err != nil {
				// Checkout proceeds at full price on any coupon failure.
				log.Printf("coupon %q rejected at checkout for user %d: %v", req.CouponCode, user.ID, err)
			} else {
				discountPercent = coupon.DiscountPercentage
				total -= int64(math.Round(float64(total) * discountPercent / 100))
			}
		}

		snapshotJSON, err := json.Marshal(snapshot)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing checkout", "error": err.Error()})
			return
		}

		session, err := gw.CreateSession(c.Request.Context(), &payments.SessionRequest{
			LineItems:       lineItems,
			Currency:        checkoutCurrency,
			DiscountPercent: discountPercent,
			SuccessURL:      clientURL + "/purchase-success?session_id={CHECKOUT_SESSION_ID}",
			CancelURL:       clientURL + "/purchase-cancel",
			Metadata: map[string]string{
				"userId":     strconv.FormatUint(uint64(user.ID), 10),
				"couponCode": req.CouponCode,
				"products":   string(snapshotJSON),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing checkout", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": session.ID, "totalAmount": float64(total) / 100})
	}
}

// POST /api/payments/checkout-success
//
// Phase 2: poll the processor for the session and, when paid, materialize the
// order from the metadata snapshot (never from the live cart), deactivate the
// redeemed coupon, and issue a reward coupon for qualifying purchases. The
// whole step runs in one transaction and is idempotent: the unique session-id
// column plus an in-transaction existence check guarantee exactly one order
// per paid session no matter how often the confirmation is called.
func CheckoutSuccess(db *gorm.DB, gw payments.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutSuccessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
			return
		}

		session, err := gw.RetrieveSession(c.Request.Context(), req.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing successful checkout", "error": err.Error()})
			return
		}

		if !session.Paid {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment not completed, no order created"})
			return
		}

		userID64, err := strconv.ParseUint(session.Metadata["userId"], 10, 64)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing successful checkout", "error": "invalid session metadata"})
			return
		}
		userID := uint(userID64)

		var lines []models.OrderLine
		if err := json.Unmarshal([]byte(session.Metadata["products"]), &lines); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing successful checkout", "error": "invalid session metadata"})
			return
		}

		var order models.Order
		created := false
		err = db.Transaction(func(tx *gorm.DB) error {
			err := tx.Where("stripe_session_id = ?", req.SessionID).First(&order).Error
			if err == nil {
				return nil // already materialized by an earlier confirmation
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if code := session.Metadata["couponCode"]; code != "" {
				if err := couponControllers.Deactivate(tx, userID, code); err != nil {
					return err
				}
			}

			order = models.Order{
				UserID:          userID,
				Products:        datatypes.JSON(session.Metadata["products"]),
				TotalAmount:     float64(session.AmountTotal) / 100,
				StripeSessionID: req.SessionID,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			created = true

			// Reward qualifying purchases once payment is confirmed, judged
			// on the snapshot's pre-discount gross.
			var gross int64
			for _, line := range lines {
				gross += minorUnits(line.Price) * int64(line.Quantity)
			}
			if gross >= couponRewardThreshold {
				if _, err := couponControllers.IssueForUser(tx, userID); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing successful checkout", "error": err.Error()})
			return
		}

		if created {
			orderControllers.BroadcastNewOrder(order)
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment successful, order created, and coupon deactivated if used.",
			"orderId": order.ID,
		})
	}
}
