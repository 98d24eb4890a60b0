package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server/internal/domain"
	"server/internal/middleware"
)

func TestOpportunitiesListActiveOnly(t *testing.T) {
	app, _, _, _ := newTestApp()
	app.Opportunities = &fakeOpportunityRepo{opportunities: []domain.Opportunity{
		{ID: "o1", Title: "Field Officer", IsActive: true},
		{ID: "o2", Title: "Old Posting", IsActive: false},
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/opportunities", nil)
	rec := httptest.NewRecorder()
	app.OpportunitiesList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody(t, rec)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Field Officer", items[0].(map[string]any)["title"])
}

func TestOpportunitiesApply(t *testing.T) {
	app, _, _, _ := newTestApp()
	opportunities := &fakeOpportunityRepo{opportunities: []domain.Opportunity{
		{ID: "o1", Title: "Field Officer", IsActive: true},
	}}
	app.Opportunities = opportunities

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"cover_letter":"I have two years of community outreach experience."}`))
	req = withURLParam(req, "id", "o1")
	req = req.WithContext(middleware.ContextWithUser(req.Context(), "usr-1", "member"))
	rec := httptest.NewRecorder()
	app.OpportunitiesApply(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pending", decodeBody(t, rec)["status"])
	require.Len(t, opportunities.applications, 1)
	assert.Equal(t, "usr-1", opportunities.applications[0].UserID)
	assert.Equal(t, 1, opportunities.opportunities[0].ApplicationCount)
}

func TestOpportunitiesApplyRequiresLoginAndLetter(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		app, _, _, _ := newTestApp()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"cover_letter":"hi"}`))
		req = withURLParam(req, "id", "o1")
		rec := httptest.NewRecorder()
		app.OpportunitiesApply(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
	t.Run("empty cover letter", func(t *testing.T) {
		app, _, _, _ := newTestApp()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"cover_letter":"   "}`))
		req = withURLParam(req, "id", "o1")
		req = req.WithContext(middleware.ContextWithUser(req.Context(), "usr-1", "member"))
		rec := httptest.NewRecorder()
		app.OpportunitiesApply(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContactCreate(t *testing.T) {
	app, _, _, _ := newTestApp()
	contacts := app.Contact.(*fakeContactRepo)

	rec := postJSON(t, app.ContactCreate, `{
		"name": "Sibusiso",
		"email": "sibusiso@example.sz",
		"subject": "Partnership",
		"message": "We would like to sponsor a training cohort."
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "new", decodeBody(t, rec)["status"])
	require.Len(t, contacts.messages, 1)
}

func TestContactCreateRequiresAllFields(t *testing.T) {
	app, _, _, _ := newTestApp()
	contacts := app.Contact.(*fakeContactRepo)

	rec := postJSON(t, app.ContactCreate, `{"name":"Sibusiso","email":"sibusiso@example.sz","subject":"","message":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, contacts.messages)
}
