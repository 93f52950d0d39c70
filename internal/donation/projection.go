package donation

import (
	"fmt"

	"github.com/nanumteam/nanum/internal/repository"
)

// Label is the single user-facing status of a donation. It is always
// recomputed from the persisted fields on read and never stored, so the
// displayed state cannot drift from the underlying record.
type Label string

const (
	LabelPendingApproval Label = "pending_approval"
	LabelPendingMatch    Label = "pending_match"
	LabelMatched         Label = "matched"
	LabelRejected        Label = "rejected"
	LabelPendingShipment Label = "pending_shipment"
	LabelInTransit       Label = "in_transit"
	LabelCompleted       Label = "completed"
	LabelCancelled       Label = "cancelled"
)

// carrierUnassigned is a legacy sentinel stored by older clients in the
// carrier and tracking_number columns. It means "not set yet" and must be
// read the same way as NULL or empty.
const carrierUnassigned = "미정"

func isUnset(v *string) bool {
	return v == nil || *v == "" || *v == carrierUnassigned
}

// Project collapses the donation's persisted fields plus the linked
// delivery (nil when absent) into a label and a human-readable explanation.
// Rules are evaluated in strict priority order; the first match wins.
// orgName may be empty when no organization is linked.
func Project(d *repository.Donation, delivery *repository.Delivery, orgName string) (Label, string) {
	label := projectLabel(d, delivery)
	return label, explain(label, d, orgName)
}

func projectLabel(d *repository.Donation, delivery *repository.Delivery) Label {
	switch {
	case d.Status == repository.LifecycleCancelled:
		return LabelCancelled
	case d.AdminDecision == repository.DecisionRejected:
		return LabelRejected
	case d.Status == repository.LifecycleShipped:
		// No transition produces this status anymore; kept for rows
		// written before delivery records carried their own status.
		return LabelPendingShipment
	case d.Status == repository.LifecycleCompleted:
		if delivery != nil && delivery.Status == repository.DeliveryDelivered {
			return LabelCompleted
		}
		if delivery != nil && !isUnset(delivery.Carrier) && !isUnset(delivery.TrackingNumber) {
			return LabelPendingShipment
		}
		if delivery == nil || delivery.Status == "" ||
			delivery.Status == repository.DeliveryPending ||
			delivery.Status == repository.DeliveryPreparing {
			return LabelMatched
		}
		if delivery.Status == repository.DeliveryInTransit {
			return LabelInTransit
		}
		return LabelMatched
	case d.Status == repository.LifecycleInProgress:
		return LabelPendingMatch
	case d.Status == repository.LifecyclePending || d.AdminDecision == repository.DecisionPending:
		return LabelPendingApproval
	default:
		return LabelPendingApproval
	}
}

func explain(label Label, d *repository.Donation, orgName string) string {
	switch label {
	case LabelPendingApproval:
		return "Your donation is under administrator review."
	case LabelPendingMatch:
		if d.MatchMode == repository.MatchDirect && d.OrganizationID != nil && orgName != "" {
			return fmt.Sprintf("%s is reviewing your donation.", orgName)
		}
		return "Awaiting an organization match."
	case LabelMatched:
		if orgName != "" {
			return fmt.Sprintf("Your donation has been connected with %s.", orgName)
		}
		return "Your donation has been connected with an organization."
	case LabelRejected:
		if d.CancelReason != nil && *d.CancelReason != "" {
			return *d.CancelReason
		}
		return "Please review the rejection reason and reapply."
	case LabelPendingShipment:
		return "Preparing shipment."
	case LabelInTransit:
		return "Your donation is in transit."
	case LabelCancelled:
		return "Cancelled by donor."
	default:
		return ""
	}
}
