package service

import (
	"context"
	"fmt"

	"renthive-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed EmailService. An empty apiKey
// disables sending: every method becomes a logged no-op, which keeps local
// development from needing a SendGrid account.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRequestReceivedNotification(ctx context.Context, ownerEmail, requesterName, itemName string) error {
	body := fmt.Sprintf("Hello,\n\n%s requested to rent %s. Review the request in the app.\n\nThe RentHive Team", requesterName, itemName)
	return s.send(ownerEmail, "New Rental Request", body)
}

func (s *emailService) SendApprovalNotification(ctx context.Context, requesterEmail, itemName, ownerName string) error {
	body := fmt.Sprintf("Hello,\n\nYour request for %s was approved by %s. You can now proceed to payment.\n\nThe RentHive Team", itemName, ownerName)
	return s.send(requesterEmail, "Request Approved", body)
}

func (s *emailService) SendRejectionNotification(ctx context.Context, requesterEmail, itemName, ownerName string) error {
	body := fmt.Sprintf("Hello,\n\nYour request for %s was rejected by %s.\n\nThe RentHive Team", itemName, ownerName)
	return s.send(requesterEmail, "Request Rejected", body)
}

func (s *emailService) SendPaymentConfirmation(ctx context.Context, requesterEmail, itemName string, amountCents int32) error {
	body := fmt.Sprintf("Hello,\n\nYour payment of $%.2f for %s was received. Ready for handover!\n\nThe RentHive Team", float64(amountCents)/100, itemName)
	return s.send(requesterEmail, "Payment Confirmed", body)
}

func (s *emailService) SendReturnNotification(ctx context.Context, ownerEmail, requesterName, itemName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has returned %s. Complete the rental once you have checked the item.\n\nThe RentHive Team", requesterName, itemName)
	return s.send(ownerEmail, "Item Returned", body)
}

func (s *emailService) SendCompletionNotification(ctx context.Context, requesterEmail, itemName string) error {
	body := fmt.Sprintf("Hello,\n\nThank you for renting %s! Your deposit, if any, has been released.\n\nThe RentHive Team", itemName)
	return s.send(requesterEmail, "Rental Completed", body)
}

func (s *emailService) SendDisputeNotification(ctx context.Context, email, itemName, reporterName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has opened a dispute for %s. Please review it in the app.\n\nThe RentHive Team", reporterName, itemName)
	return s.send(email, "Dispute Opened", body)
}
