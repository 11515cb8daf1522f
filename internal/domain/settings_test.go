package domain

import (
	"context"
	"testing"

	"github.com/gigspace/core/internal/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUpdateContent(t *testing.T) {
	d, _, backend := newTestDomain(t)
	ctx := context.Background()

	content := d.Content()
	content.Home.HeroTitle = "A new headline"
	result, err := d.UpdateContent(ctx, editorIdent, content)
	require.NoError(t, err)
	assert.True(t, result.Persisted)
	assert.Equal(t, "A new headline", d.Content().Home.HeroTitle)

	// A fresh process sees the saved copy.
	fresh := New(backend, &stubMailer{}, zap.NewNop(), Options{})
	fresh.LoadPublic(ctx)
	assert.Equal(t, "A new headline", fresh.Content().Home.HeroTitle)
}

func TestUpdateContentPreservesStoredAutomations(t *testing.T) {
	d, _, backend := newTestDomain(t)
	ctx := context.Background()

	automations := d.Automations()
	automations.MaintenanceMode = true
	_, err := d.UpdateAutomations(ctx, editorIdent, automations)
	require.NoError(t, err)

	content := d.Content()
	content.Projects.Title = "Selected Work"
	_, err = d.UpdateContent(ctx, editorIdent, content)
	require.NoError(t, err)

	fresh := New(backend, &stubMailer{}, zap.NewNop(), Options{})
	fresh.LoadPublic(ctx)
	assert.Equal(t, "Selected Work", fresh.Content().Projects.Title)
	assert.True(t, fresh.Automations().MaintenanceMode, "automations sibling survives content save")
}

func TestUpdateAutomationsPreservesStoredContent(t *testing.T) {
	d, _, backend := newTestDomain(t)
	ctx := context.Background()

	content := d.Content()
	content.Contact.Email = "studio@gigspace.com"
	_, err := d.UpdateContent(ctx, editorIdent, content)
	require.NoError(t, err)

	automations := d.Automations()
	automations.NotifyOnApplication = false
	_, err = d.UpdateAutomations(ctx, editorIdent, automations)
	require.NoError(t, err)

	fresh := New(backend, &stubMailer{}, zap.NewNop(), Options{})
	fresh.LoadPublic(ctx)
	assert.Equal(t, "studio@gigspace.com", fresh.Content().Contact.Email, "content sibling survives automations save")
	assert.False(t, fresh.Automations().NotifyOnApplication)
}

func TestUpdateAutomationsDrivesGates(t *testing.T) {
	d, _, _ := newTestDomain(t)
	ctx := context.Background()

	assert.False(t, d.MaintenanceActive())
	assert.True(t, d.ApplicationsOpen())

	automations := d.Automations()
	automations.MaintenanceMode = true
	automations.ApplicationsEnabled = false
	_, err := d.UpdateAutomations(ctx, editorIdent, automations)
	require.NoError(t, err)

	assert.True(t, d.MaintenanceActive())
	assert.False(t, d.ApplicationsOpen())
}

func TestSettingsRequireEditor(t *testing.T) {
	d, _, _ := newTestDomain(t)
	ctx := context.Background()

	_, err := d.UpdateContent(ctx, access.Identity{}, d.Content())
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = d.UpdateAutomations(ctx, access.Identity{}, d.Automations())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSettingsUpdateWithFailingBackendStaysLocal(t *testing.T) {
	d, _ := newFailingDomain(t)
	ctx := context.Background()

	content := d.Content()
	content.Home.HeroTitle = "Offline edit"
	result, err := d.UpdateContent(ctx, editorIdent, content)
	require.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.ErrorIs(t, result.Err, errBackendDown)
	assert.Equal(t, "Offline edit", d.Content().Home.HeroTitle)
}
