package models

import (
	"time"

	"github.com/gigspace/core/internal/access"
)

// Recovery credential. Works even when the backing store is empty or
// unreachable so an operator can always reach the dashboard; a config
// flag disables it for hardened deployments.
const (
	RecoveryEmail      = "admin@gigspace.com"
	RecoveryAccessCode = "admin123"
	RecoveryAdminID    = "recovery-admin"
	RecoveryAdminName  = "GigSpace Owner"
)

// RecoveryAdmin is the identity granted by the recovery credential.
func RecoveryAdmin() AdminUser {
	return AdminUser{
		ID:         RecoveryAdminID,
		Email:      RecoveryEmail,
		AccessCode: RecoveryAccessCode,
		Name:       RecoveryAdminName,
		Role:       access.RoleOwner,
	}
}

// DefaultAutomations returns the automation toggles used until an
// operator saves their own.
func DefaultAutomations() AutomationSettings {
	return AutomationSettings{
		AutoReplyContact:    true,
		AutoArchiveDeclined: false,
		NotifyOnApplication: true,
		MaintenanceMode:     false,
		ApplicationsEnabled: true,
	}
}

// DefaultSiteContent returns the stock site copy.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		Owner: OwnerProfile{
			Name:      "GigSpace Team",
			Role:      "Digital Product Studio",
			Bio:       "We are a collective of designers, engineers, and strategists obsessed with pixel perfection and scalable code. We build digital products that stand the test of time.",
			AvatarURL: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			LinkedIn:  "https://linkedin.com",
			Twitter:   "https://twitter.com",
			GitHub:    "https://github.com",
		},
		Home: HomeContent{
			HeroTitle:      "Building digital masterpieces for the modern web.",
			HeroSubtitle:   "GigSpace is a creative collective focused on crafting intuitive, high-performance interfaces that drive user engagement and business growth.",
			HeroButtonText: "Start a Project",
			Feature1Title:  "Scalable Architecture",
			Feature1Desc:   "We build systems that grow with you. Robust, maintainable codebases designed for longevity and performance.",
			Feature2Title:  "Lightning Fast",
			Feature2Desc:   "Speed is a feature. We optimize every pixel and line of code to ensure near-instant load times and 60fps animations.",
			Feature3Title:  "Global Accessibility",
			Feature3Desc:   "Inclusive design is at our core. We ensure your digital presence is usable by everyone, everywhere.",
		},
		Projects: SectionContent{
			Title:    "Our Portfolio",
			Subtitle: "Explorations in design, development, and digital strategy.",
		},
		Contact: ContactContent{
			Title:    "Let's shape the future together.",
			Subtitle: "Have a project in mind? We'd love to hear about it. Fill out the form or send us an email.",
			Email:    "hello@gigspace.com",
			Address:  "100 Tech Plaza, Suite 400, San Francisco, CA 94107",
			Phone:    "+1 (555) 000-0000",
		},
		Join: SectionContent{
			Title:    "Join the Collective",
			Subtitle: "We are a team of dreamers, builders, and designers. We don't just fill positions; we look for partners.",
		},
		EmailTemplates: EmailTemplates{
			ApplicationApproved: "Dear Applicant,\n\nWe are thrilled to inform you that your application has been approved! We were impressed by your portfolio and experience.\n\nPlease reply to this email to schedule your onboarding call.\n\nWelcome to GigSpace!",
		},
	}
}

// DefaultProjects returns the showcase portfolio used when the store
// holds no projects, so a fresh deploy never renders an empty site.
func DefaultProjects() []Project {
	now := time.Now().UTC()
	return []Project{
		{
			ID:              "1",
			Title:           "Nova Fintech App",
			Description:     "A next-generation banking interface focusing on clarity, speed, and financial wellness visualization.",
			LongDescription: "## Overview\nNova represents a shift in how users interact with their finances. We moved away from spreadsheet-like views to a conversational, insight-driven interface.\n\n## The Challenge\nTraditional banking apps are cluttered. Our goal was to reduce cognitive load while increasing feature density.\n\n## The Solution\nWe utilized a card-based UI system with real-time data visualization using WebGL. The result is a 40% increase in user session time.",
			Client:          "Nova Bank",
			Role:            "UI/UX & Frontend",
			ImageURL:        "https://images.unsplash.com/photo-1563986768609-322da13575f3?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			Tags:            []string{"Fintech", "React", "Data Viz"},
			Links:           []LinkItem{{Label: "Live App", URL: "#"}},
			Date:            now.Format(time.RFC3339),
			Status:          ProjectPublished,
			Views:           1240,
		},
		{
			ID:              "2",
			Title:           "Aura Health Platform",
			Description:     "Telehealth platform connecting patients with specialists through secure, high-quality video streams.",
			LongDescription: "## Overview\nAura connects patients to specialists in under 2 minutes. \n\n## Tech Stack\nBuilt with WebRTC for video, React for the frontend, and Supabase for real-time signaling.",
			Client:          "Aura Health",
			Role:            "Full Stack Development",
			ImageURL:        "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			Tags:            []string{"HealthTech", "WebRTC", "Mobile"},
			Links:           []LinkItem{{Label: "Case Study", URL: "#"}},
			Date:            now.AddDate(0, 0, -5).Format(time.RFC3339),
			Status:          ProjectPublished,
			Views:           850,
		},
		{
			ID:              "3",
			Title:           "Echo AI Assistant",
			Description:     "An AI-powered workspace companion that organizes your digital life automatically.",
			LongDescription: "Echo uses LLMs to parse your calendar, emails, and notes to create a unified daily dashboard.",
			Client:          "Internal Venture",
			Role:            "Product Design",
			ImageURL:        "https://images.unsplash.com/photo-1677442136019-21780ecad995?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80",
			Tags:            []string{"AI", "Productivity", "Experimental"},
			Links:           []LinkItem{},
			Date:            now.AddDate(0, 0, -15).Format(time.RFC3339),
			Status:          ProjectPublished,
			Views:           2100,
		},
	}
}
