package jobqueue

import (
	"context"
	"fmt"

	"github.com/ManuelReschke/PixelMart/app/repository"
	"github.com/ManuelReschke/PixelMart/internal/pkg/mail"
)

// processOrderEmailJob resolves the order's purchaser and product and sends
// the payment confirmation email. The join against user and catalog happens
// here, at send time, so the job payload stays a bare order reference.
func (q *Queue) processOrderEmailJob(ctx context.Context, job *Job) error {
	_ = ctx
	payload, err := OrderEmailJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid order email payload: %w", err)
	}

	repos := repository.GetGlobalRepositories()
	order, err := repos.Order.GetByID(payload.OrderID)
	if err != nil {
		return fmt.Errorf("failed to load order %d: %w", payload.OrderID, err)
	}

	user, err := repos.User.GetByID(order.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user %d for order %d: %w", order.UserID, order.ID, err)
	}

	product, err := repos.Product.GetByID(order.ProductID)
	if err != nil {
		return fmt.Errorf("failed to load product %d for order %d: %w", order.ProductID, order.ID, err)
	}

	subject := "Payment Successful"
	body := fmt.Sprintf("Hi %s, Your payment for %s is successful", user.Email, product.Name)

	return mail.SendMail(user.Email, subject, body)
}
