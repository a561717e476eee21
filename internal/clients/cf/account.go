// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package cf

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go"
)

// AccountResult contains the result of an account lookup.
type AccountResult struct {
	ID   string
	Name string
	Type string
}

func accountResultFrom(a cloudflare.Account) AccountResult {
	return AccountResult{
		ID:   a.ID,
		Name: a.Name,
		Type: a.Type,
	}
}

// GetAccount retrieves an account by ID.
func (c *API) GetAccount(ctx context.Context, accountID string) (*AccountResult, error) {
	if accountID == "" {
		return nil, fmt.Errorf("get account: %w", ErrInvalidConfiguration)
	}

	account, _, err := c.CloudflareClient.Account(ctx, accountID)
	if err != nil {
		c.Log.Error(err, "error getting account", "id", accountID)
		return nil, NewAPIError("get account", accountID, err)
	}

	result := accountResultFrom(account)
	return &result, nil
}

// ListAccounts returns the accounts visible to the token, filtered by name
// when name is not empty.
func (c *API) ListAccounts(ctx context.Context, name string) ([]AccountResult, error) {
	accounts, _, err := c.CloudflareClient.Accounts(ctx, cloudflare.AccountsListParams{Name: name})
	if err != nil {
		c.Log.Error(err, "error listing accounts", "name", name)
		return nil, NewAPIError("list accounts", name, err)
	}

	results := make([]AccountResult, 0, len(accounts))
	for _, a := range accounts {
		// The API filters by substring; keep exact matches only.
		if name != "" && a.Name != name {
			continue
		}
		results = append(results, accountResultFrom(a))
	}
	return results, nil
}
