package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountType string

const (
	AccountTypeCompany  AccountType = "COMPANY"
	AccountTypeEmployer AccountType = "EMPLOYER"
)

type ApprovalStatus string

const (
	ApprovalStatusUnapproved ApprovalStatus = "UNAPPROVED"
	ApprovalStatusApproved   ApprovalStatus = "APPROVED"
)

// Account is a company or employer organization account.
// OfficialName and Email are unique across the whole table; the DB
// constraint, not the pre-insert read, is what guarantees it.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Type           AccountType    `gorm:"size:16;index;not null" json:"type"`
	OfficialName   string         `gorm:"uniqueIndex;size:255;not null" json:"officialName"`
	Email          string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	ApprovalStatus ApprovalStatus `gorm:"size:16;not null;default:UNAPPROVED" json:"approvalStatus"`
}

func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// RegistrationApproval tracks an account pending admin approval and its
// proof-of-registration image. One row per account, created in the same
// transaction as the account itself.
type RegistrationApproval struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AccountID uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"accountId"`
	UserType  AccountType `gorm:"size:16;not null" json:"userType"`
	ImageURL  string      `gorm:"size:2048" json:"imageUrl"`
}

func (a *RegistrationApproval) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
