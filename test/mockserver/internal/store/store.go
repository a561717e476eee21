// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

// Package store provides in-memory storage for the mock Cloudflare API server.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/StringKe/cloudflare-zone-operator/test/mockserver/models"
)

// Default fixtures present after NewStore and Reset.
const (
	DefaultAccountID   = "test-account-id"
	DefaultAccountName = "Test Account"
	DefaultZoneID      = "test-zone-id"
	DefaultZoneName    = "example.com"
)

// Store provides thread-safe in-memory storage for mock data.
type Store struct {
	mu sync.RWMutex

	accounts   map[string]*models.Account
	zones      map[string]*models.Zone
	dnsRecords map[string]*models.DNSRecord // recordID -> DNSRecord
	pageRules  map[string]*models.PageRule  // ruleID -> PageRule

	// Counters for generating IDs
	idCounter int64
}

// NewStore creates a new Store with initialized maps and default data.
func NewStore() *Store {
	s := &Store{}
	s.resetLocked()
	return s
}

func (s *Store) resetLocked() {
	s.accounts = make(map[string]*models.Account)
	s.zones = make(map[string]*models.Zone)
	s.dnsRecords = make(map[string]*models.DNSRecord)
	s.pageRules = make(map[string]*models.PageRule)
	s.idCounter = 1000

	s.accounts[DefaultAccountID] = &models.Account{
		ID:   DefaultAccountID,
		Name: DefaultAccountName,
		Type: "standard",
	}
	s.zones[DefaultZoneID] = &models.Zone{
		ID:          DefaultZoneID,
		Name:        DefaultZoneName,
		Status:      "active",
		Type:        "full",
		NameServers: []string{"ada.ns.cloudflare.com", "bob.ns.cloudflare.com"},
		Account:     models.AccountRef{ID: DefaultAccountID, Name: DefaultAccountName},
	}
}

// Reset restores the default data set.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// GenerateID returns a unique 32 character hex ID, like Cloudflare's.
func (s *Store) GenerateID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idCounter++
	return fmt.Sprintf("%032x", s.idCounter)
}

// ---- Accounts ----

// AddAccount inserts or replaces an account.
func (s *Store) AddAccount(acc *models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[acc.ID] = acc
}

// GetAccount returns an account by ID.
func (s *Store) GetAccount(id string) (*models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	return acc, ok
}

// ListAccounts returns accounts whose name contains nameFilter, sorted by ID.
func (s *Store) ListAccounts(nameFilter string) []*models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		if nameFilter == "" || strings.Contains(acc.Name, nameFilter) {
			result = append(result, acc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ---- Zones ----

// AddZone inserts or replaces a zone.
func (s *Store) AddZone(zone *models.Zone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones[zone.ID] = zone
}

// GetZone returns a zone by ID.
func (s *Store) GetZone(id string) (*models.Zone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	zone, ok := s.zones[id]
	return zone, ok
}

// GetZoneByName returns a zone by domain name.
func (s *Store) GetZoneByName(name string) (*models.Zone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, zone := range s.zones {
		if zone.Name == name {
			return zone, true
		}
	}
	return nil, false
}

// ListZones returns all zones sorted by ID.
func (s *Store) ListZones() []*models.Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Zone, 0, len(s.zones))
	for _, zone := range s.zones {
		result = append(result, zone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// DeleteZone removes a zone, e.g. to simulate drift.
func (s *Store) DeleteZone(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.zones[id]; !ok {
		return false
	}
	delete(s.zones, id)
	return true
}

// CountZones returns the number of stored zones.
func (s *Store) CountZones() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.zones)
}

// ---- DNS Records ----

// CreateDNSRecord stores a record.
func (s *Store) CreateDNSRecord(record *models.DNSRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dnsRecords[record.ID] = record
}

// GetDNSRecord returns a record by ID.
func (s *Store) GetDNSRecord(id string) (*models.DNSRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.dnsRecords[id]
	return record, ok
}

// UpdateDNSRecord applies update to a stored record.
func (s *Store) UpdateDNSRecord(id string, update func(*models.DNSRecord)) (*models.DNSRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.dnsRecords[id]
	if !ok {
		return nil, false
	}
	update(record)
	return record, true
}

// DeleteDNSRecord removes a record.
func (s *Store) DeleteDNSRecord(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dnsRecords[id]; !ok {
		return false
	}
	delete(s.dnsRecords, id)
	return true
}

// ListDNSRecords returns the records of a zone, optionally filtered by type and name.
func (s *Store) ListDNSRecords(zoneID, recordType, name string) []*models.DNSRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.DNSRecord, 0)
	for _, record := range s.dnsRecords {
		if record.ZoneID != zoneID {
			continue
		}
		if recordType != "" && record.Type != recordType {
			continue
		}
		if name != "" && record.Name != name {
			continue
		}
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// CountDNSRecords returns the number of stored records.
func (s *Store) CountDNSRecords() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dnsRecords)
}

// ---- Page Rules ----

// CreatePageRule stores a page rule.
func (s *Store) CreatePageRule(rule *models.PageRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageRules[rule.ID] = rule
}

// GetPageRule returns a page rule of a zone.
func (s *Store) GetPageRule(zoneID, id string) (*models.PageRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rule, ok := s.pageRules[id]
	if !ok || rule.ZoneID != zoneID {
		return nil, false
	}
	return rule, true
}

// UpdatePageRule applies update to a stored page rule.
func (s *Store) UpdatePageRule(zoneID, id string, update func(*models.PageRule)) (*models.PageRule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rule, ok := s.pageRules[id]
	if !ok || rule.ZoneID != zoneID {
		return nil, false
	}
	update(rule)
	return rule, true
}

// DeletePageRule removes a page rule.
func (s *Store) DeletePageRule(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pageRules[id]; !ok {
		return false
	}
	delete(s.pageRules, id)
	return true
}
