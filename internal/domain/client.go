package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClientStatus is the pipeline status of a client.
type ClientStatus string

const (
	ClientStatusContacted        ClientStatus = "contacted"
	ClientStatusAttentionNeeded  ClientStatus = "attention_needed"
	ClientStatusFollowUpRequired ClientStatus = "follow_up_required"
	ClientStatusWaitsForOffer    ClientStatus = "waits_for_offer"
	ClientStatusOnHold           ClientStatus = "on_hold"
	ClientStatusAbandoned        ClientStatus = "abandoned"
	ClientStatusActive           ClientStatus = "active"
	ClientStatusInactive         ClientStatus = "inactive"
)

func (s ClientStatus) String() string { return string(s) }

// ClientType distinguishes leads from paying customers.
type ClientType string

const (
	ClientTypePresales ClientType = "presales"
	ClientTypeCustomer ClientType = "customer"
)

func (t ClientType) String() string { return string(t) }

// Client is a CRM contact owned by an organization. Email is unique per
// organization (case-insensitive) and is the Magic Extract upsert key.
type Client struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Email          string
	Phone          *string
	Company        *string
	NotesSummary   *string
	Status         ClientStatus
	ClientType     ClientType
	Source         *string
	CreatedAt      time.Time
}

// InteractionType is the channel of a client interaction.
type InteractionType string

const (
	InteractionCall    InteractionType = "call"
	InteractionEmail   InteractionType = "email"
	InteractionMeeting InteractionType = "meeting"
	InteractionOther   InteractionType = "other"
)

// InteractionDirection tells whether the client or the organization initiated contact.
type InteractionDirection string

const (
	DirectionInbound  InteractionDirection = "inbound"
	DirectionOutbound InteractionDirection = "outbound"
)

// Interaction is a logged touchpoint with a client.
type Interaction struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Type      InteractionType
	Direction InteractionDirection
	Date      time.Time
	Subject   string
	Notes     string
	EmailID   *string
	CreatedAt time.Time
}

// NotificationType categorizes in-app notifications.
type NotificationType string

const (
	NotificationEmail      NotificationType = "email"
	NotificationReminder   NotificationType = "reminder"
	NotificationTagRemoved NotificationType = "tag_removed"
	NotificationOther      NotificationType = "other"
)

// Notification is an in-app message addressed to a user.
type Notification struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Type        NotificationType
	Title       string
	Message     *string
	IsRead      bool
	RelatedID   *uuid.UUID
	RelatedType *string
	Metadata    map[string]any
	CreatedAt   time.Time
}
