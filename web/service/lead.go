package service

import (
	"errors"
	"strings"

	"lead-ui/database"
	"lead-ui/database/model"
)

// ErrNameRequired is returned when a lead is submitted without a name.
var ErrNameRequired = errors.New("name required")

// LeadService persists and lists sales leads.
type LeadService struct{}

// GetLeads returns all leads, most recently created first.
func (s *LeadService) GetLeads() ([]*model.Lead, error) {
	db := database.GetDB()
	leads := make([]*model.Lead, 0)
	err := db.Model(model.Lead{}).Order("id desc").Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// AddLead validates and stores a new lead, returning the materialized row.
// The name is required; an empty status falls back to the default.
func (s *LeadService) AddLead(lead *model.Lead) (*model.Lead, error) {
	lead.Name = strings.TrimSpace(lead.Name)
	if lead.Name == "" {
		return nil, ErrNameRequired
	}
	if lead.Status == "" {
		lead.Status = model.DefaultLeadStatus
	}

	db := database.GetDB()
	if err := db.Create(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

// CountLeads returns the number of stored leads.
func (s *LeadService) CountLeads() (int64, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.Lead{}).Count(&count).Error
	return count, err
}
