package domain

import (
	"context"
	"strings"
	"testing"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitApplication(t *testing.T, d *Store) models.JobApplication {
	t.Helper()
	app, _, err := d.AddApplication(context.Background(), JoinInput{
		Name:       "Sam",
		Email:      "sam@x.com",
		Role:       "Designer",
		Portfolio:  "https://sam.dev",
		Motivation: "I want in",
	})
	require.NoError(t, err)
	return app
}

func TestAddApplicationDefaultsToPending(t *testing.T) {
	d, _, _ := newTestDomain(t)

	app := submitApplication(t, d)
	assert.Equal(t, models.ApplicationPending, app.Status)
	assert.NotEmpty(t, app.ID)
	assert.NotEmpty(t, app.Date)
}

func TestAddApplicationNotifiesEveryAdmin(t *testing.T) {
	d, m, backend := newTestDomain(t)
	ctx := context.Background()

	// Second roster member also gets an alert.
	_, err := backend.Insert(ctx, store.Admins, store.Record{
		"id": "a2", "email": "second@gigspace.com", "access_code": "x", "role": "admin",
	})
	require.NoError(t, err)

	submitApplication(t, d)

	require.Len(t, m.notifyTo, 2)
	assert.Contains(t, m.notifyTo, "admin@gigspace.com")
	assert.Contains(t, m.notifyTo, "second@gigspace.com")
	assert.Equal(t, "Designer", m.notifies[0].Role)
}

func TestAddApplicationNotifyToggleOff(t *testing.T) {
	d, m, _ := newTestDomain(t)
	ctx := context.Background()

	automations := d.Automations()
	automations.NotifyOnApplication = false
	_, err := d.UpdateAutomations(ctx, editorIdent, automations)
	require.NoError(t, err)

	submitApplication(t, d)
	assert.Empty(t, m.notifyTo)
}

func TestAddApplicationRejectedWhenClosed(t *testing.T) {
	d, _, _ := newTestDomain(t)
	ctx := context.Background()

	automations := d.Automations()
	automations.ApplicationsEnabled = false
	_, err := d.UpdateAutomations(ctx, editorIdent, automations)
	require.NoError(t, err)

	_, _, err = d.AddApplication(ctx, JoinInput{Name: "Sam", Email: "sam@x.com", Role: "Designer"})
	assert.ErrorIs(t, err, ErrApplicationsClosed)

	apps, err := d.Applications(ctx, editorIdent)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApprovalSendsTemplatedEmail(t *testing.T) {
	d, m, _ := newTestDomain(t)
	ctx := context.Background()

	app := submitApplication(t, d)

	result, err := d.UpdateApplicationStatus(ctx, editorIdent, app.ID, models.ApplicationApproved)
	require.NoError(t, err)
	assert.True(t, result.Persisted)

	require.Len(t, m.approvedTo, 1)
	assert.Equal(t, "sam@x.com", m.approvedTo[0])
	html := m.approvedHTML[0]
	assert.True(t, strings.HasPrefix(html, "<p>"))
	assert.True(t, strings.HasSuffix(html, "</p>"))
	assert.Contains(t, html, "Dear Applicant,<br/><br/>")
	assert.NotContains(t, html, "\n")

	apps, err := d.Applications(ctx, editorIdent)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, models.ApplicationApproved, apps[0].Status)
}

func TestDeclineSendsNoEmail(t *testing.T) {
	d, m, _ := newTestDomain(t)
	ctx := context.Background()

	app := submitApplication(t, d)
	result, err := d.UpdateApplicationStatus(ctx, editorIdent, app.ID, models.ApplicationDeclined)
	require.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.Empty(t, m.approvedTo)
}

func TestStatusTransitionsArePendingOnly(t *testing.T) {
	d, _, _ := newTestDomain(t)
	ctx := context.Background()

	app := submitApplication(t, d)

	// Only approved and declined are reachable.
	_, err := d.UpdateApplicationStatus(ctx, editorIdent, app.ID, models.ApplicationReviewed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = d.UpdateApplicationStatus(ctx, editorIdent, app.ID, "bogus")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = d.UpdateApplicationStatus(ctx, editorIdent, app.ID, models.ApplicationApproved)
	require.NoError(t, err)

	// A decided application never moves again.
	_, err = d.UpdateApplicationStatus(ctx, editorIdent, app.ID, models.ApplicationDeclined)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = d.UpdateApplicationStatus(ctx, editorIdent, app.ID, models.ApplicationApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateApplicationStatusGuards(t *testing.T) {
	d, _, _ := newTestDomain(t)
	ctx := context.Background()

	_, err := d.UpdateApplicationStatus(ctx, editorIdent, "ghost", models.ApplicationApproved)
	assert.ErrorIs(t, err, ErrNotFound)

	app := submitApplication(t, d)
	_, err = d.UpdateApplicationStatus(ctx, access.Identity{}, app.ID, models.ApplicationApproved)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApplicationsRequireEditor(t *testing.T) {
	d, _, _ := newTestDomain(t)

	_, err := d.Applications(context.Background(), access.Identity{})
	assert.ErrorIs(t, err, ErrForbidden)
}
