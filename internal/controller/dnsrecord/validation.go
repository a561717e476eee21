// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package dnsrecord

import (
	"math"
	"net/netip"

	"k8s.io/utils/ptr"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
)

const (
	// DefaultMXPriority is used for MX records without spec.priority.
	DefaultMXPriority = 10

	// AutomaticTTL lets Cloudflare choose the TTL.
	AutomaticTTL = 1
)

var supportedTypes = map[string]bool{
	v1alpha1.RecordTypeA:     true,
	v1alpha1.RecordTypeAAAA:  true,
	v1alpha1.RecordTypeCNAME: true,
	v1alpha1.RecordTypeMX:    true,
	v1alpha1.RecordTypeTXT:   true,
}

// desiredRecord validates spec and returns the record Cloudflare should hold.
// ZoneID is left for the caller.
func desiredRecord(spec v1alpha1.DNSRecordSpec) (cf.DNSRecordParams, error) {
	params := cf.DNSRecordParams{
		Name:    spec.Name,
		Type:    spec.Type,
		Content: spec.Content,
		TTL:     int(ptr.Deref(spec.TTL, AutomaticTTL)),
		Proxied: spec.Proxied,
		Comment: spec.Comment,
	}

	if !supportedTypes[spec.Type] {
		return params, controller.Errorf(controller.UnsupportedRecordType, "unsupported record type %q", spec.Type)
	}

	switch spec.Type {
	case v1alpha1.RecordTypeA, v1alpha1.RecordTypeAAAA:
		content, err := parseAddress(spec.Type, spec.Content)
		if err != nil {
			return params, err
		}
		params.Content = content
	case v1alpha1.RecordTypeMX:
		priority := ptr.Deref(spec.Priority, DefaultMXPriority)
		if priority < 0 || priority > math.MaxUint16 {
			return params, controller.Errorf(controller.ConfigurationInvalid, "MX priority %d is out of range", priority)
		}
		params.Priority = ptr.To(uint16(priority))
	}
	return params, nil
}

// parseAddress returns the canonical form of an A or AAAA record content.
func parseAddress(recordType, content string) (string, error) {
	addr, err := netip.ParseAddr(content)
	if err != nil {
		return "", controller.Errorf(controller.InvalidAddressLiteral, "invalid %s record content %q: %v", recordType, content, err)
	}

	want4 := recordType == v1alpha1.RecordTypeA
	if addr.Is4() != want4 || addr.Zone() != "" {
		family := "IPv6"
		if want4 {
			family = "IPv4"
		}
		return "", controller.Errorf(controller.InvalidAddressLiteral, "invalid %s record content %q: not an %s address", recordType, content, family)
	}
	return addr.String(), nil
}
