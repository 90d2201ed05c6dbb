package email

import "embed"

// Template names an HTML template under templates/.
type Template string

const (
	// TemplateMemberValidated is sent once an admin approves a member.
	TemplateMemberValidated Template = "member_validated"
)

//go:embed templates/*.html
var templateFS embed.FS
