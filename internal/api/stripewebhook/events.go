package stripewebhooks

import (
	"errors"
	"fmt"

	"invoice-app/database"
	"invoice-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func handleCheckoutSessionCompleted(c *gin.Context, session *stripe.CheckoutSession) error {
	user, err := userForCustomer(session.Customer)
	if err != nil {
		return err
	}

	// Activation clears the trial window in the same write; an elapsed
	// trial must not re-trigger expiration once the user pays.
	updates := map[string]interface{}{
		"plan":          users.PlanActive,
		"trial_ends_at": nil,
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to activate user after checkout: %w", err)
	}

	return nil
}

func handleSubscriptionDeleted(c *gin.Context, sub *stripe.Subscription) error {
	user, err := userForCustomer(sub.Customer)
	if err != nil {
		return err
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("plan", users.PlanExpired).Error; err != nil {
		return fmt.Errorf("failed to expire user after cancellation: %w", err)
	}

	return nil
}

func userForCustomer(customer *stripe.Customer) (*users.User, error) {
	if customer == nil || customer.ID == "" {
		return nil, errors.New("event missing customer")
	}

	var user users.User
	if err := database.DB.Where("stripe_customer_id = ?", customer.ID).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user not found for customer %s: %w", customer.ID, err)
	}
	return &user, nil
}
