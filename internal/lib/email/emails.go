package email

// SendMemberValidatedEmail tells a member their profile is now public.
func (c *Client) SendMemberValidatedEmail(to, username, profileURL string) error {
	data := map[string]string{
		"Username":   username,
		"ProfileURL": profileURL,
	}

	return c.SendEmail(
		to,
		"Your directory profile is live",
		TemplateMemberValidated,
		data,
	)
}
