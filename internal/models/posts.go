package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobPost is a hiring post owned by a company or an employer.
type JobPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"ownerId"`
	OwnerType AccountType `gorm:"size:16;not null" json:"ownerType"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`
	JobType     string `gorm:"size:64" json:"jobType"` // FULLTIME|PARTTIME|CONTRACT|INTERNSHIP
	SalaryMin   int    `json:"salaryMin"`
	SalaryMax   int    `json:"salaryMax"`
}

func (p *JobPost) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// JobFindingPost is a job-seeking post owned by an employer account.
type JobFindingPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`

	Title          string `gorm:"size:255;not null" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
	Location       string `gorm:"size:255" json:"location"`
	ExpectedSalary int    `json:"expectedSalary"`
}

func (p *JobFindingPost) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
