package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopcore/products-orders-api/internal/models"
)

type EmailService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// SendOrderConfirmation emails the customer a plain-text receipt for a newly
// placed order.
func (e *emailService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail(order.CustomerName, order.CustomerEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = fmt.Sprintf("Order #%d confirmed", order.ID)
	message.AddPersonalizations(personalization)

	body := fmt.Sprintf("Hi %s,\n\nYour order #%d has been received.\n\n", order.CustomerName, order.ID)
	for _, item := range order.Items {
		name := fmt.Sprintf("product %d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}

		body += fmt.Sprintf("  %s x%d @ %.2f = %.2f\n", name, item.Quantity, item.UnitPrice, item.Subtotal)
	}

	body += fmt.Sprintf("\nTotal: %.2f\n", order.TotalAmount)
	message.AddContent(mail.NewContent("text/plain", body))

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
