package donation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nanumteam/nanum/internal/donation"
	"github.com/nanumteam/nanum/internal/repository"
)

func strPtr(s string) *string {
	return &s
}

func baseDonation(status repository.LifecycleStatus, decision repository.AdminDecision) *repository.Donation {
	return &repository.Donation{
		ID:             uuid.New(),
		DonorID:        uuid.New(),
		MatchMode:      repository.MatchIndirect,
		DeliveryMethod: repository.DeliveryCarrier,
		AdminDecision:  decision,
		Status:         status,
	}
}

func TestProject_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		donation *repository.Donation
		delivery *repository.Delivery
		expected donation.Label
	}{
		{
			name:     "cancelled wins over everything",
			donation: baseDonation(repository.LifecycleCancelled, repository.DecisionRejected),
			delivery: &repository.Delivery{Status: repository.DeliveryDelivered},
			expected: donation.LabelCancelled,
		},
		{
			name:     "rejection wins over completed",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionRejected),
			delivery: &repository.Delivery{Status: repository.DeliveryDelivered},
			expected: donation.LabelRejected,
		},
		{
			name:     "legacy shipped status projects as pending shipment",
			donation: baseDonation(repository.LifecycleShipped, repository.DecisionApproved),
			expected: donation.LabelPendingShipment,
		},
		{
			name:     "completed with delivered delivery",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionApproved),
			delivery: &repository.Delivery{Status: repository.DeliveryDelivered},
			expected: donation.LabelCompleted,
		},
		{
			name:     "completed with carrier and tracking assigned",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionApproved),
			delivery: &repository.Delivery{
				Status:         repository.DeliveryPending,
				Carrier:        strPtr("CJ"),
				TrackingNumber: strPtr("1234567890"),
			},
			expected: donation.LabelPendingShipment,
		},
		{
			name:     "completed without delivery is matched",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionApproved),
			expected: donation.LabelMatched,
		},
		{
			name:     "completed with pending delivery is matched",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionApproved),
			delivery: &repository.Delivery{Status: repository.DeliveryPending},
			expected: donation.LabelMatched,
		},
		{
			name:     "completed with preparing delivery is matched",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionApproved),
			delivery: &repository.Delivery{Status: repository.DeliveryPreparing},
			expected: donation.LabelMatched,
		},
		{
			name:     "completed with delivery in transit",
			donation: baseDonation(repository.LifecycleCompleted, repository.DecisionApproved),
			delivery: &repository.Delivery{
				Status:    repository.DeliveryInTransit,
				Carrier:   strPtr("CJ"),
				ShippedAt: nil,
			},
			expected: donation.LabelInTransit,
		},
		{
			name:     "in progress means awaiting match",
			donation: baseDonation(repository.LifecycleInProgress, repository.DecisionApproved),
			expected: donation.LabelPendingMatch,
		},
		{
			name:     "fresh donation awaits approval",
			donation: baseDonation(repository.LifecyclePending, repository.DecisionPending),
			expected: donation.LabelPendingApproval,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, explanation := donation.Project(tc.donation, tc.delivery, "")
			assert.Equal(t, tc.expected, label)
			assert.NotEmpty(t, explanation)
		})
	}
}

func TestProject_UnassignedCarrierSentinel(t *testing.T) {
	// Rows written by older clients store "미정" instead of NULL in the
	// carrier and tracking columns; both must read as unassigned.
	tests := []struct {
		name     string
		carrier  *string
		tracking *string
		expected donation.Label
	}{
		{"both nil", nil, nil, donation.LabelMatched},
		{"both empty", strPtr(""), strPtr(""), donation.LabelMatched},
		{"both sentinel", strPtr("미정"), strPtr("미정"), donation.LabelMatched},
		{"carrier sentinel tracking set", strPtr("미정"), strPtr("1234567890"), donation.LabelMatched},
		{"carrier set tracking sentinel", strPtr("CJ"), strPtr("미정"), donation.LabelMatched},
		{"both set", strPtr("CJ"), strPtr("1234567890"), donation.LabelPendingShipment},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := baseDonation(repository.LifecycleCompleted, repository.DecisionApproved)
			del := &repository.Delivery{
				Status:         repository.DeliveryPending,
				Carrier:        tc.carrier,
				TrackingNumber: tc.tracking,
			}
			label, _ := donation.Project(d, del, "")
			assert.Equal(t, tc.expected, label)
		})
	}
}

func TestProject_Explanations(t *testing.T) {
	t.Run("rejection reason is shown verbatim", func(t *testing.T) {
		d := baseDonation(repository.LifecycleInProgress, repository.DecisionRejected)
		d.CancelReason = strPtr("Items did not pass inspection")

		label, explanation := donation.Project(d, nil, "")
		assert.Equal(t, donation.LabelRejected, label)
		assert.Equal(t, "Items did not pass inspection", explanation)
	})

	t.Run("rejection without reason falls back to generic text", func(t *testing.T) {
		d := baseDonation(repository.LifecycleInProgress, repository.DecisionRejected)

		label, explanation := donation.Project(d, nil, "")
		assert.Equal(t, donation.LabelRejected, label)
		assert.Equal(t, "Please review the rejection reason and reapply.", explanation)
	})

	t.Run("matched explanation names the organization", func(t *testing.T) {
		d := baseDonation(repository.LifecycleCompleted, repository.DecisionApproved)
		orgID := uuid.New()
		d.OrganizationID = &orgID

		label, explanation := donation.Project(d, nil, "Hope Center")
		assert.Equal(t, donation.LabelMatched, label)
		assert.Contains(t, explanation, "Hope Center")
	})

	t.Run("direct donation under review names the organization", func(t *testing.T) {
		d := baseDonation(repository.LifecycleInProgress, repository.DecisionApproved)
		d.MatchMode = repository.MatchDirect
		orgID := uuid.New()
		d.OrganizationID = &orgID

		label, explanation := donation.Project(d, nil, "Hope Center")
		assert.Equal(t, donation.LabelPendingMatch, label)
		assert.Contains(t, explanation, "Hope Center")
	})

	t.Run("indirect donation awaiting match has no organization", func(t *testing.T) {
		d := baseDonation(repository.LifecycleInProgress, repository.DecisionApproved)

		label, explanation := donation.Project(d, nil, "")
		assert.Equal(t, donation.LabelPendingMatch, label)
		assert.Equal(t, "Awaiting an organization match.", explanation)
	})
}

func TestProject_LifecycleScenarios(t *testing.T) {
	t.Run("direct donation accepted and shipped", func(t *testing.T) {
		orgID := uuid.New()
		d := baseDonation(repository.LifecyclePending, repository.DecisionPending)
		d.MatchMode = repository.MatchDirect
		d.OrganizationID = &orgID

		label, _ := donation.Project(d, nil, "Hope Center")
		assert.Equal(t, donation.LabelPendingApproval, label)

		d.AdminDecision = repository.DecisionApproved
		d.Status = repository.LifecycleInProgress
		label, _ = donation.Project(d, nil, "Hope Center")
		assert.Equal(t, donation.LabelPendingMatch, label)

		d.Status = repository.LifecycleCompleted
		del := &repository.Delivery{Status: repository.DeliveryPending}
		label, _ = donation.Project(d, del, "Hope Center")
		assert.Equal(t, donation.LabelMatched, label)

		del.Carrier = strPtr("CJ")
		del.TrackingNumber = strPtr("1234567890")
		label, _ = donation.Project(d, del, "Hope Center")
		assert.Equal(t, donation.LabelPendingShipment, label)

		del.Status = repository.DeliveryInTransit
		label, _ = donation.Project(d, del, "Hope Center")
		assert.Equal(t, donation.LabelInTransit, label)

		del.Status = repository.DeliveryDelivered
		label, _ = donation.Project(d, del, "Hope Center")
		assert.Equal(t, donation.LabelCompleted, label)
	})

	t.Run("indirect donation rejected after approval", func(t *testing.T) {
		d := baseDonation(repository.LifecycleInProgress, repository.DecisionApproved)

		label, _ := donation.Project(d, nil, "")
		assert.Equal(t, donation.LabelPendingMatch, label)

		d.AdminDecision = repository.DecisionRejected
		d.CancelReason = strPtr("duplicate submission")
		label, explanation := donation.Project(d, nil, "")
		assert.Equal(t, donation.LabelRejected, label)
		assert.Equal(t, "duplicate submission", explanation)
	})

	t.Run("donor cancellation is terminal", func(t *testing.T) {
		d := baseDonation(repository.LifecycleCancelled, repository.DecisionApproved)
		del := &repository.Delivery{
			Status:         repository.DeliveryInTransit,
			Carrier:        strPtr("CJ"),
			TrackingNumber: strPtr("1234567890"),
		}

		label, explanation := donation.Project(d, del, "Hope Center")
		assert.Equal(t, donation.LabelCancelled, label)
		assert.Equal(t, "Cancelled by donor.", explanation)
	})
}
