package email

// SendWelcomeEmail greets a newly registered developer.
func (c *Client) SendWelcomeEmail(to, developerName string) error {
	data := map[string]string{
		"DeveloperName": developerName,
	}

	return c.SendEmail(
		to,
		"Welcome to Timesheet!",
		TemplateWelcome,
		data,
	)
}
