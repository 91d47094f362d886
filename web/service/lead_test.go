package service

import (
	"os"
	"testing"

	"lead-ui/database"
	"lead-ui/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	dbPath := "test.db"
	os.Remove(dbPath)
	require.NoError(t, database.InitDB(dbPath))
}

func teardown() {
	if sqlDB, err := database.GetDB().DB(); err == nil {
		sqlDB.Close()
	}
	os.Remove("test.db")
}

func TestAddLeadAppliesDefaultStatus(t *testing.T) {
	setup(t)
	defer teardown()

	service := LeadService{}

	lead, err := service.AddLead(&model.Lead{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.NotZero(t, lead.Id)
	assert.Equal(t, "New", lead.Status)

	stored := &model.Lead{}
	require.NoError(t, database.GetDB().First(stored, lead.Id).Error)
	assert.Equal(t, "New", stored.Status)
}

func TestAddLeadKeepsSubmittedFields(t *testing.T) {
	setup(t)
	defer teardown()

	service := LeadService{}

	lead, err := service.AddLead(&model.Lead{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Company: "X",
		Status:  "Contacted",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "jane@x.com", lead.Email)
	assert.Equal(t, "X", lead.Company)
	assert.Equal(t, "Contacted", lead.Status)
}

func TestAddLeadRequiresName(t *testing.T) {
	setup(t)
	defer teardown()

	service := LeadService{}

	_, err := service.AddLead(&model.Lead{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = service.AddLead(&model.Lead{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	count, err := service.CountLeads()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestGetLeadsOrdersByIdDescending(t *testing.T) {
	setup(t)
	defer teardown()

	service := LeadService{}

	for _, name := range []string{"A", "B", "C"} {
		_, err := service.AddLead(&model.Lead{Name: name})
		require.NoError(t, err)
	}

	leads, err := service.GetLeads()
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "C", leads[0].Name)
	assert.Equal(t, "B", leads[1].Name)
	assert.Equal(t, "A", leads[2].Name)
	assert.Greater(t, leads[0].Id, leads[1].Id)
	assert.Greater(t, leads[1].Id, leads[2].Id)
}
