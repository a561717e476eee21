// SPDX-License-Identifier: Apache-2.0
// Copyright 2025-2026 The Cloudflare Operator Authors

package zone

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/StringKe/cloudflare-zone-operator/api/v1alpha1"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf"
	"github.com/StringKe/cloudflare-zone-operator/internal/clients/cf/mock"
	"github.com/StringKe/cloudflare-zone-operator/internal/controller"
	"github.com/StringKe/cloudflare-zone-operator/internal/testutil"
	"github.com/StringKe/cloudflare-zone-operator/test/mockserver"
)

const zoneName = "example"

func newReconciler(env *testutil.Env) *Reconciler {
	return &Reconciler{
		Client:     env.Client,
		Scheme:     env.Client.Scheme(),
		Recorder:   env.Recorder,
		APIFactory: env.APIFactory,
		Notifier:   env.Notifier,
		Gate:       env.Gate,
	}
}

func reconcileZone(t *testing.T, env *testutil.Env) (ctrl.Result, *v1alpha1.Zone, error) {
	t.Helper()
	key := client.ObjectKey{Namespace: testutil.TestNamespace, Name: zoneName}
	result, err := newReconciler(env).Reconcile(context.Background(), ctrl.Request{NamespacedName: key})

	got := &v1alpha1.Zone{}
	require.NoError(t, env.Client.Get(context.Background(), key, got))
	return result, got, err
}

func zoneOfAccount(account string) *v1alpha1.Zone {
	return testutil.NewZoneBuilder(zoneName, testutil.TestNamespace).
		WithDomain(testutil.DefaultZoneName).
		WithAccountRef(account).
		Build()
}

func TestReconcile_AccountNotReady(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	factory := mock.NewMockClientFactory(mockCtrl)
	factory.GetMockClient().EXPECT().CreateZone(gomock.Any(), gomock.Any()).Times(0)

	f := testutil.NewFixtures()
	account := testutil.NewAccountBuilder("main", f.Namespace).WithID(testutil.DefaultAccountID).Build()
	env := testutil.NewEnv(factory, []client.Object{account, zoneOfAccount("main")})

	result, got, err := reconcileZone(t, env)
	testutil.AssertRequeue(t, result, err, 60*time.Second)

	assert.False(t, got.Status.Ready)
	assert.Equal(t, "dependency account/main is not ready", got.Status.Error)
	assert.Empty(t, got.Status.ID)
	testutil.AssertNotReady(t, got.Status.Conditions, string(controller.DependencyNotReady))
	testutil.AssertHasFinalizer(t, got, controller.FinalizerZone)
	assert.Zero(t, env.Cache.Len(), "no client is needed before the account is ready")
}

func TestReconcile_AccountNotFound(t *testing.T) {
	factory := mock.NewMockClientFactory(gomock.NewController(t))
	env := testutil.NewEnv(factory, []client.Object{zoneOfAccount("main")})

	result, got, err := reconcileZone(t, env)
	testutil.AssertRequeue(t, result, err, 30*time.Second)
	assert.False(t, got.Status.Ready)
	assert.Equal(t, "dependency account/main not found", got.Status.Error)
	testutil.AssertNotReady(t, got.Status.Conditions, string(controller.ReferenceNotFound))
}

func TestReconcile_Create(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	factory := mock.NewMockClientFactory(mockCtrl)
	factory.GetMockClient().EXPECT().
		CreateZone(gomock.Any(), cf.ZoneParams{
			Name:      testutil.DefaultZoneName,
			AccountID: testutil.DefaultAccountID,
			Type:      "partial",
		}).
		Return(&cf.ZoneResult{
			ID:          "zone-1",
			Name:        testutil.DefaultZoneName,
			Status:      "pending",
			NameServers: []string{"ada.ns.cloudflare.com", "bob.ns.cloudflare.com"},
			AccountID:   testutil.DefaultAccountID,
		}, nil)

	f := testutil.NewFixtures()
	zone := zoneOfAccount("main")
	zone.Spec.Type = v1alpha1.ZoneTypePartial
	env := testutil.NewEnv(factory, []client.Object{f.TokenSecret(), f.ReadyAccount("main"), zone})

	result, got, err := reconcileZone(t, env)
	testutil.AssertRequeue(t, result, err, 300*time.Second)

	assert.True(t, got.Status.Ready)
	assert.Equal(t, "zone-1", got.Status.ID)
	assert.Equal(t, "pending", got.Status.State)
	assert.Equal(t, []string{"ada.ns.cloudflare.com", "bob.ns.cloudflare.com"}, got.Status.NameServers)
	assert.Empty(t, got.Status.Error)
	testutil.AssertReady(t, got.Status.Conditions)

	assert.Equal(t, []string{"Normal Synced Zone example.com is pending"}, testutil.DrainEvents(env.Recorder.Events))
}

func TestReconcile_CreateFails(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	factory := mock.NewMockClientFactory(mockCtrl)
	factory.GetMockClient().EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		Return(nil, cf.NewAPIError("create zone", testutil.DefaultZoneName, errors.New("HTTP status 500: internal error")))

	f := testutil.NewFixtures()
	env := testutil.NewEnv(factory, []client.Object{f.TokenSecret(), f.ReadyAccount("main"), zoneOfAccount("main")})

	result, got, err := reconcileZone(t, env)
	testutil.AssertRequeue(t, result, err, 60*time.Second)
	assert.False(t, got.Status.Ready)
	assert.Equal(t, "create zone example.com: HTTP status 500: internal error", got.Status.Error)
	testutil.AssertNotReady(t, got.Status.Conditions, string(controller.UpstreamAPIFailure))
}

func TestReconcile_AdoptsExistingZone(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	factory := mock.NewMockClientFactory(mockCtrl)
	m := factory.GetMockClient()
	gomock.InOrder(
		m.EXPECT().CreateZone(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("example.com already exists (1061)")),
		m.EXPECT().GetZoneIDByName(gomock.Any(), testutil.DefaultZoneName).Return("zone-9", nil),
		m.EXPECT().GetZone(gomock.Any(), "zone-9").Return(&cf.ZoneResult{
			ID:        "zone-9",
			Name:      testutil.DefaultZoneName,
			Status:    "active",
			AccountID: testutil.DefaultAccountID,
		}, nil),
	)

	f := testutil.NewFixtures()
	env := testutil.NewEnv(factory, []client.Object{f.TokenSecret(), f.ReadyAccount("main"), zoneOfAccount("main")})

	result, got, err := reconcileZone(t, env)
	testutil.AssertRequeue(t, result, err, 5*time.Minute)
	assert.True(t, got.Status.Ready)
	assert.Equal(t, "zone-9", got.Status.ID)
	assert.Equal(t, "active", got.Status.State)

	assert.Equal(t, []string{"Normal Adopted Adopted zone example.com (zone-9)"}, testutil.DrainEvents(env.Recorder.Events))
}

func TestReconcile_RefusesZoneOfOtherAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	factory := mock.NewMockClientFactory(mockCtrl)
	m := factory.GetMockClient()
	m.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Return(nil, cf.ErrResourceConflict)
	m.EXPECT().GetZoneIDByName(gomock.Any(), testutil.DefaultZoneName).Return("zone-9", nil)
	m.EXPECT().GetZone(gomock.Any(), "zone-9").Return(&cf.ZoneResult{ID: "zone-9", AccountID: "someone-else"}, nil)

	f := testutil.NewFixtures()
	env := testutil.NewEnv(factory, []client.Object{f.TokenSecret(), f.ReadyAccount("main"), zoneOfAccount("main")})

	result, got, err := reconcileZone(t, env)
	testutil.AssertRequeue(t, result, err, 5*time.Minute)
	assert.False(t, got.Status.Ready)
	assert.Empty(t, got.Status.ID)
	assert.Equal(t, "zone example.com already exists in account someone-else", got.Status.Error)
	testutil.AssertNotReady(t, got.Status.Conditions, string(controller.ConfigurationInvalid))
}

func TestReconcile_ExistingZone(t *testing.T) {
	tests := []struct {
		name   string
		expect func(m *mock.MockCloudflareClient)
		wantID string
	}{
		{
			name: "drift check",
			expect: func(m *mock.MockCloudflareClient) {
				m.EXPECT().GetZone(gomock.Any(), "zone-1").
					Return(&cf.ZoneResult{ID: "zone-1", Status: "moved", AccountID: testutil.DefaultAccountID}, nil)
			},
			wantID: "zone-1",
		},
		{
			name: "recreated when gone",
			expect: func(m *mock.MockCloudflareClient) {
				gomock.InOrder(
					m.EXPECT().GetZone(gomock.Any(), "zone-1").
						Return(nil, cf.NewAPIError("get zone", "zone-1", errors.New("HTTP status 404: zone not found (1001)"))),
					m.EXPECT().CreateZone(gomock.Any(), gomock.Any()).
						Return(&cf.ZoneResult{ID: "zone-2", Status: "pending"}, nil),
				)
			},
			wantID: "zone-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			factory := mock.NewMockClientFactory(mockCtrl)
			tt.expect(factory.GetMockClient())

			zone := testutil.NewZoneBuilder(zoneName, testutil.TestNamespace).
				WithDomain(testutil.DefaultZoneName).
				WithAccountID(testutil.DefaultAccountID).
				Ready("zone-1").
				WithFinalizer(controller.FinalizerZone).
				Build()
			env := testutil.NewEnv(factory, []client.Object{zone})

			result, got, err := reconcileZone(t, env)
			testutil.AssertRequeue(t, result, err, 5*time.Minute)
			assert.True(t, got.Status.Ready)
			assert.Equal(t, tt.wantID, got.Status.ID)
			assert.Empty(t, testutil.DrainEvents(env.Recorder.Events), "a zone that stays ready emits no event")
		})
	}
}

func TestReconcile_ConfigurationInvalid(t *testing.T) {
	tests := []struct {
		name      string
		zone      *v1alpha1.Zone
		wantError string
	}{
		{
			name:      "no account",
			zone:      testutil.NewZoneBuilder(zoneName, testutil.TestNamespace).Build(),
			wantError: "one of spec.accountRef or spec.accountId is required",
		},
		{
			name: "illegal name",
			zone: testutil.NewZoneBuilder(controller.IllegalObjectName, testutil.TestNamespace).
				WithAccountID(testutil.DefaultAccountID).Build(),
			wantError: `object name "illegal" is reserved`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := mock.NewMockClientFactory(gomock.NewController(t))
			env := testutil.NewEnv(factory, []client.Object{tt.zone})

			key := client.ObjectKeyFromObject(tt.zone)
			result, err := newReconciler(env).Reconcile(context.Background(), ctrl.Request{NamespacedName: key})
			testutil.AssertRequeue(t, result, err, 5*time.Minute)

			got := &v1alpha1.Zone{}
			require.NoError(t, env.Client.Get(context.Background(), key, got))
			assert.False(t, got.Status.Ready)
			assert.Equal(t, tt.wantError, got.Status.Error)
			testutil.AssertNotReady(t, got.Status.Conditions, string(controller.ConfigurationInvalid))
		})
	}
}

func TestZonesForAccount(t *testing.T) {
	f := testutil.NewFixtures()
	other := testutil.NewZoneBuilder("other", f.Namespace).WithAccountRef("second").Build()
	byID := testutil.NewZoneBuilder("by-id", f.Namespace).WithAccountID("acc").Build()
	elsewhere := testutil.NewZoneBuilder(zoneName, "elsewhere").WithAccountRef("main").Build()
	env := testutil.NewEnv(mock.NewMockClientFactory(gomock.NewController(t)),
		[]client.Object{zoneOfAccount("main"), other, byID, elsewhere})

	requests := newReconciler(env).zonesForAccount(context.Background(), f.ReadyAccount("main"))
	require.Len(t, requests, 1)
	assert.Equal(t, client.ObjectKey{Namespace: f.Namespace, Name: zoneName}, requests[0].NamespacedName)
}

func TestReconcile_MockServer(t *testing.T) {
	server := mockserver.NewTestServer()
	t.Cleanup(server.Close)

	tests := []struct {
		name      string
		domain    string
		wantID    string
		wantState string
		wantEvent string
	}{
		{
			name:      "adopts the existing zone",
			domain:    mockserver.DefaultZoneName,
			wantID:    mockserver.DefaultZoneID,
			wantState: "active",
			wantEvent: "Normal Adopted",
		},
		{
			name:      "creates a new zone",
			domain:    "new.example",
			wantState: "pending",
			wantEvent: "Normal Synced Zone new.example is pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server.Reset()

			f := testutil.NewFixtures()
			account := f.ReadyAccount("main")
			account.Status.AccountID = mockserver.DefaultAccountID
			zone := zoneOfAccount("main")
			zone.Spec.Name = tt.domain
			env := testutil.NewMockServerEnv(server, f.TokenSecret(), account, zone)

			result, got, err := reconcileZone(t, env)
			testutil.AssertRequeue(t, result, err, 5*time.Minute)
			assert.True(t, got.Status.Ready, got.Status.Error)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, got.Status.ID)
			} else {
				assert.NotEmpty(t, got.Status.ID)
			}
			assert.Equal(t, tt.wantState, got.Status.State)

			events := testutil.DrainEvents(env.Recorder.Events)
			require.Len(t, events, 1)
			assert.Contains(t, events[0], tt.wantEvent)
		})
	}
}
