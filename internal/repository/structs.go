package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidState   = errors.New("invalid state")
	ErrValidation     = errors.New("validation failed")
)

type MatchMode string

const (
	MatchDirect   MatchMode = "direct"
	MatchIndirect MatchMode = "indirect"
)

type DeliveryMethod string

const (
	DeliverySelf    DeliveryMethod = "self_delivery"
	DeliveryCarrier DeliveryMethod = "carrier_delivery"
)

type AdminDecision string

const (
	DecisionPending  AdminDecision = "pending"
	DecisionApproved AdminDecision = "approved"
	DecisionRejected AdminDecision = "rejected"
)

type LifecycleStatus string

const (
	LifecyclePending    LifecycleStatus = "pending"
	LifecycleInProgress LifecycleStatus = "in_progress"
	LifecycleShipped    LifecycleStatus = "shipped"
	LifecycleCompleted  LifecycleStatus = "completed"
	LifecycleCancelled  LifecycleStatus = "cancelled"
)

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryPreparing DeliveryStatus = "preparing"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

type OrgStatus string

const (
	OrgPending  OrgStatus = "pending"
	OrgApproved OrgStatus = "approved"
	OrgRejected OrgStatus = "rejected"
)

type Donation struct {
	ID             uuid.UUID       `db:"id"`
	DonorID        uuid.UUID       `db:"donor_id"`
	OrganizationID *uuid.UUID      `db:"organization_id"`
	MatchMode      MatchMode       `db:"match_mode"`
	DeliveryMethod DeliveryMethod  `db:"delivery_method"`
	IsAnonymous    bool            `db:"is_anonymous"`
	AdminDecision  AdminDecision   `db:"admin_decision"`
	Status         LifecycleStatus `db:"status"`
	CancelReason   *string         `db:"cancel_reason"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// DonationItem describes the donated goods. One row per donation, created
// atomically with it and never mutated by the lifecycle engine.
type DonationItem struct {
	ID          uuid.UUID `db:"id"`
	DonationID  uuid.UUID `db:"donation_id"`
	Category    string    `db:"category"`
	Size        string    `db:"size"`
	Description string    `db:"description"`
	ImageURLs   []string  `db:"image_urls"`
	Quantity    int       `db:"quantity"`
}

type Delivery struct {
	ID             uuid.UUID      `db:"id"`
	DonationID     uuid.UUID      `db:"donation_id"`
	Carrier        *string        `db:"carrier"`
	TrackingNumber *string        `db:"tracking_number"`
	Status         DeliveryStatus `db:"status"`
	SenderName     string         `db:"sender_name"`
	SenderPhone    string         `db:"sender_phone"`
	SenderAddress  string         `db:"sender_address"`
	ReceiverName   string         `db:"receiver_name"`
	ReceiverPhone  string         `db:"receiver_phone"`
	ReceiverAddr   string         `db:"receiver_address"`
	ShippedAt      *time.Time     `db:"shipped_at"`
	DeliveredAt    *time.Time     `db:"delivered_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type Organization struct {
	ID      uuid.UUID `db:"id"`
	UserID  uuid.UUID `db:"user_id"`
	Name    string    `db:"name"`
	Phone   string    `db:"phone"`
	Address string    `db:"address"`
	Status  OrgStatus `db:"status"`
}

// Contact is the registered contact information of a platform user,
// used to fill the sender side of a delivery record.
type Contact struct {
	Name    string `db:"name"`
	Phone   string `db:"phone"`
	Address string `db:"address"`
}

type Notification struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Kind       string     `db:"kind"`
	Title      string     `db:"title"`
	Message    string     `db:"message"`
	EntityID   *uuid.UUID `db:"entity_id"`
	EntityType *string    `db:"entity_type"`
	CreatedAt  time.Time  `db:"created_at"`
}
