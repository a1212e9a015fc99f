package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"opsboard/internal/domain"
	"opsboard/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendDelayNotification(ctx context.Context, toEmail, projectName, milestoneName string, entry *domain.DelayLogEntry) error {
	direction := "slipped"
	if entry.DeltaDays < 0 {
		direction = "moved earlier"
	}

	subject := fmt.Sprintf("[%s] Milestone %q %s by %d days", projectName, milestoneName, direction, abs(entry.DeltaDays))
	projectURL := fmt.Sprintf("%s/projects/%s", s.frontendURL, entry.ProjectID)

	htmlBody := buildDelayNotificationHTML(projectName, milestoneName, direction, projectURL, entry)
	textBody := fmt.Sprintf(
		"Milestone %q on project %q %s by %d days.\n\nPrevious date: %s\nNew date: %s\nAttribution: %s\nReason: %s\n\nView the project: %s\n",
		milestoneName, projectName, direction, abs(entry.DeltaDays),
		entry.PreviousDate.Format("2006-01-02"), entry.NewDate.Format("2006-01-02"),
		entry.Attribution, entry.Reason, projectURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func buildDelayNotificationHTML(projectName, milestoneName, direction, projectURL string, entry *domain.DelayLogEntry) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Schedule change on %s</h2>
  <p>Milestone <strong>%s</strong> has %s by <strong>%d days</strong>.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Previous date</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">New date</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Attribution</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Reason</td><td>%s</td></tr>
  </table>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Project</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">OpsBoard - Project Operations Dashboard</p>
</body>
</html>`, projectName, milestoneName, direction, abs(entry.DeltaDays),
		entry.PreviousDate.Format("2006-01-02"), entry.NewDate.Format("2006-01-02"),
		entry.Attribution, entry.Reason, projectURL)
}
