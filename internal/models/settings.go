package models

// AutomationSettings are the operational toggles stored beside the site
// content in the settings singleton.
type AutomationSettings struct {
	AutoReplyContact    bool `json:"auto_reply_contact"`
	AutoArchiveDeclined bool `json:"auto_archive_declined"`
	NotifyOnApplication bool `json:"notify_on_application"`
	MaintenanceMode     bool `json:"maintenance_mode"`
	ApplicationsEnabled bool `json:"applications_enabled"`
}

// OwnerProfile is the studio profile shown on the home page.
type OwnerProfile struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// HomeContent is the hero and feature copy.
type HomeContent struct {
	HeroTitle      string `json:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle"`
	HeroButtonText string `json:"hero_button_text"`
	Feature1Title  string `json:"feature1_title"`
	Feature1Desc   string `json:"feature1_desc"`
	Feature2Title  string `json:"feature2_title"`
	Feature2Desc   string `json:"feature2_desc"`
	Feature3Title  string `json:"feature3_title"`
	Feature3Desc   string `json:"feature3_desc"`
}

// SectionContent is a title/subtitle pair for a listing page.
type SectionContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ContactContent is the contact page copy and details.
type ContactContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// EmailTemplates holds operator-editable outbound mail bodies.
type EmailTemplates struct {
	ApplicationApproved string `json:"application_approved"`
}

// SiteContent is the full editable copy of the site. The schema is
// enumerated here; nothing introspects keys at runtime.
type SiteContent struct {
	Owner          OwnerProfile   `json:"owner"`
	Home           HomeContent    `json:"home"`
	Projects       SectionContent `json:"projects"`
	Contact        ContactContent `json:"contact"`
	Join           SectionContent `json:"join"`
	EmailTemplates EmailTemplates `json:"email_templates"`
}
