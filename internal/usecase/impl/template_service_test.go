package impl

import (
	"context"
	"testing"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/errors"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateService_CreateTemplate(t *testing.T) {
	fx := newLedgerFixture(t)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	claim := fx.claim(t, org, "Org", "Springfield")

	template, err := fx.tasks.CreateTemplate(context.Background(), org, &usecase.TemplateInput{
		ClaimID: &claim.ID,
		Title:   ptr("  Sweep the hall "),
	})
	require.NoError(t, err)

	assert.Equal(t, "Sweep the hall", template.Title)
	assert.Equal(t, entity.TaskPending, template.Status)
	assert.Equal(t, entity.PriorityMedium, template.Priority)
	require.NotNil(t, template.ClaimID)
	assert.Equal(t, claim.ID, *template.ClaimID)
	assert.True(t, template.Active())
}

func TestTemplateService_CreateTemplate_Rejects(t *testing.T) {
	fx := newLedgerFixture(t)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	other := fx.register(t, "other@example.com", entity.RoleOrganization)
	viewer := fx.register(t, "viewer@example.com", entity.RoleViewer)
	foreign := fx.claim(t, other, "Other", "Shelbyville")
	missing := uuid.New()

	tests := []struct {
		name     string
		identity entity.Identity
		input    *usecase.TemplateInput
		want     error
		field    string
	}{
		{
			name:     "viewer",
			identity: viewer,
			input:    &usecase.TemplateInput{Title: ptr("Sweep")},
			want:     domainerrors.ErrForbidden,
		},
		{
			name:     "missing title",
			identity: org,
			input:    &usecase.TemplateInput{},
			want:     domainerrors.ErrValidationFailed,
			field:    "title",
		},
		{
			name:     "short title",
			identity: org,
			input:    &usecase.TemplateInput{Title: ptr(" ab ")},
			want:     domainerrors.ErrValidationFailed,
			field:    "title",
		},
		{
			name:     "completed without description",
			identity: org,
			input:    &usecase.TemplateInput{Title: ptr("Sweep"), Status: ptr(entity.TaskCompleted)},
			want:     domainerrors.ErrValidationFailed,
			field:    "description",
		},
		{
			name:     "relative url",
			identity: org,
			input:    &usecase.TemplateInput{Title: ptr("Sweep"), TemplateURL: ptr("docs/sweep")},
			want:     domainerrors.ErrValidationFailed,
			field:    "template_url",
		},
		{
			name:     "unknown priority",
			identity: org,
			input:    &usecase.TemplateInput{Title: ptr("Sweep"), Priority: ptr(entity.TaskPriority("someday"))},
			want:     domainerrors.ErrValidationFailed,
			field:    "priority",
		},
		{
			name:     "foreign claim",
			identity: org,
			input:    &usecase.TemplateInput{Title: ptr("Sweep"), ClaimID: &foreign.ID},
			want:     domainerrors.ErrNotClaimOwner,
		},
		{
			name:     "unknown claim",
			identity: org,
			input:    &usecase.TemplateInput{Title: ptr("Sweep"), ClaimID: &missing},
			want:     domainerrors.ErrClaimNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.tasks.CreateTemplate(context.Background(), tt.identity, tt.input)
			require.ErrorIs(t, err, tt.want)

			if tt.field == "" {
				return
			}
			validation, ok := errors.AsType[*domainerrors.ValidationError](err)
			require.True(t, ok)
			require.Len(t, validation.Fields(), 1)
			assert.Equal(t, tt.field, validation.Fields()[0].Field)
		})
	}
}

func TestTemplateService_CreateTemplate_CompletedWithURL(t *testing.T) {
	fx := newLedgerFixture(t)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)

	template, err := fx.tasks.CreateTemplate(context.Background(), org, &usecase.TemplateInput{
		Title:       ptr("Sweep"),
		Status:      ptr(entity.TaskCompleted),
		TemplateURL: ptr("https://example.com/sweep"),
		Priority:    ptr(entity.PriorityUrgent),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityUrgent, template.Priority)
}

func TestTemplateService_ListTemplates(t *testing.T) {
	fx := newLedgerFixture(t)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	other := fx.register(t, "other@example.com", entity.RoleOrganization)
	claim := fx.claim(t, org, "Org", "Springfield")

	create := func(identity entity.Identity, input *usecase.TemplateInput) *entity.TaskTemplate {
		template, err := fx.tasks.CreateTemplate(context.Background(), identity, input)
		require.NoError(t, err)
		return template
	}
	scoped := create(org, &usecase.TemplateInput{Title: ptr("Scoped"), ClaimID: &claim.ID})
	create(org, &usecase.TemplateInput{Title: ptr("Blocked"), Status: ptr(entity.TaskBlocked)})
	create(other, &usecase.TemplateInput{Title: ptr("Foreign")})

	all, err := fx.tasks.ListTemplates(context.Background(), entity.TemplateFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := fx.tasks.ListTemplates(context.Background(), entity.TemplateFilter{OwnerID: &org.AccountID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	byClaim, err := fx.tasks.ListTemplates(context.Background(), entity.TemplateFilter{ClaimID: &claim.ID})
	require.NoError(t, err)
	require.Len(t, byClaim, 1)
	assert.Equal(t, scoped.ID, byClaim[0].ID)

	blocked, err := fx.tasks.ListTemplates(context.Background(), entity.TemplateFilter{Status: ptr(entity.TaskBlocked)})
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "Blocked", blocked[0].Title)

	_, err = fx.tasks.ListTemplates(context.Background(), entity.TemplateFilter{Status: ptr(entity.TaskStatus("done"))})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTemplateService_UpdateTemplate(t *testing.T) {
	fx := newLedgerFixture(t)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	other := fx.register(t, "other@example.com", entity.RoleOrganization)
	admin := fx.register(t, "admin@example.com", entity.RoleAdmin)
	claim := fx.claim(t, org, "Org", "Springfield")

	template, err := fx.tasks.CreateTemplate(context.Background(), org, &usecase.TemplateInput{
		Title:       ptr("Sweep"),
		ClaimID:     &claim.ID,
		Description: ptr("Every Friday"),
	})
	require.NoError(t, err)

	updated, err := fx.tasks.UpdateTemplate(context.Background(), org, template.ID, &usecase.TemplateInput{
		Status:  ptr(entity.TaskCompleted),
		ClaimID: ptr(uuid.Nil),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskCompleted, updated.Status)
	assert.Equal(t, "Sweep", updated.Title)
	assert.Nil(t, updated.ClaimID)

	_, err = fx.tasks.UpdateTemplate(context.Background(), org, template.ID, &usecase.TemplateInput{Description: ptr(" ")})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.tasks.UpdateTemplate(context.Background(), other, template.ID, &usecase.TemplateInput{Title: ptr("Mine now")})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	byAdmin, err := fx.tasks.UpdateTemplate(context.Background(), admin, template.ID, &usecase.TemplateInput{Priority: ptr(entity.PriorityHigh)})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityHigh, byAdmin.Priority)

	_, err = fx.tasks.UpdateTemplate(context.Background(), org, uuid.New(), &usecase.TemplateInput{Title: ptr("Ghost")})
	require.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestTemplateService_ArchiveTemplate(t *testing.T) {
	fx := newLedgerFixture(t)
	org := fx.register(t, "org@example.com", entity.RoleOrganization)
	other := fx.register(t, "other@example.com", entity.RoleOrganization)

	template, err := fx.tasks.CreateTemplate(context.Background(), org, &usecase.TemplateInput{Title: ptr("Sweep")})
	require.NoError(t, err)

	err = fx.tasks.ArchiveTemplate(context.Background(), other, template.ID)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, fx.tasks.ArchiveTemplate(context.Background(), org, template.ID))

	templates, err := fx.tasks.ListTemplates(context.Background(), entity.TemplateFilter{})
	require.NoError(t, err)
	assert.Empty(t, templates)

	_, err = fx.tasks.UpdateTemplate(context.Background(), org, template.ID, &usecase.TemplateInput{Title: ptr("Again")})
	require.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)

	err = fx.tasks.ArchiveTemplate(context.Background(), org, template.ID)
	require.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}
