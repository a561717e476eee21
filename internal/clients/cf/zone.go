// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go"
)

// ZoneParams contains parameters for creating a zone.
type ZoneParams struct {
	Name      string
	AccountID string
	JumpStart bool
	// Type is "full" or "partial".
	Type string
}

// ZoneResult contains the result of a zone operation.
type ZoneResult struct {
	ID          string
	Name        string
	Status      string
	Type        string
	NameServers []string
	AccountID   string
	Paused      bool
}

func zoneResultFrom(z cloudflare.Zone) *ZoneResult {
	return &ZoneResult{
		ID:          z.ID,
		Name:        z.Name,
		Status:      z.Status,
		Type:        z.Type,
		NameServers: z.NameServers,
		AccountID:   z.Account.ID,
		Paused:      z.Paused,
	}
}

// CreateZone creates a new zone in the given account.
func (c *API) CreateZone(ctx context.Context, params ZoneParams) (*ZoneResult, error) {
	if params.Name == "" || params.AccountID == "" {
		return nil, fmt.Errorf("create zone: %w", ErrInvalidConfiguration)
	}
	zoneType := params.Type
	if zoneType == "" {
		zoneType = "full"
	}

	zone, err := c.CloudflareClient.CreateZone(ctx, params.Name, params.JumpStart, cloudflare.Account{ID: params.AccountID}, zoneType)
	if err != nil {
		c.Log.Error(err, "error creating zone", "name", params.Name)
		return nil, NewAPIError("create zone", params.Name, err)
	}

	c.Log.Info("Zone created", "id", zone.ID, "name", zone.Name)
	return zoneResultFrom(zone), nil
}

// GetZone retrieves a zone by ID.
func (c *API) GetZone(ctx context.Context, zoneID string) (*ZoneResult, error) {
	if zoneID == "" {
		return nil, fmt.Errorf("get zone: %w", ErrInvalidZoneID)
	}

	zone, err := c.CloudflareClient.ZoneDetails(ctx, zoneID)
	if err != nil {
		c.Log.Error(err, "error getting zone", "id", zoneID)
		return nil, NewAPIError("get zone", zoneID, err)
	}
	return zoneResultFrom(zone), nil
}

// GetZoneIDByName looks a zone ID up by its domain name.
func (c *API) GetZoneIDByName(_ context.Context, name string) (string, error) {
	id, err := c.CloudflareClient.ZoneIDByName(name)
	if err != nil {
		c.Log.Error(err, "error getting zone id by name", "name", name)
		return "", NewAPIError("get zone id", name, err)
	}
	return id, nil
}
