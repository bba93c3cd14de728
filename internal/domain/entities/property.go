package entities

import (
	"time"

	"github.com/google/uuid"
)

// Property holds reference data about a managed unit. Core fields are always
// present; the remaining fields are declared optional extras that feed the
// responder's property-information block when non-empty.
type Property struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID    uuid.UUID `json:"account_id" gorm:"type:uuid;not null;index"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Address      string    `json:"address" gorm:"type:text"`
	CheckInTime  string    `json:"check_in_time" gorm:"type:varchar(20)"`
	CheckOutTime string    `json:"check_out_time" gorm:"type:varchar(20)"`

	// Optional extras surfaced to guests when set
	WifiName           string `json:"wifi_name,omitempty" gorm:"type:varchar(100)"`
	WifiPassword       string `json:"wifi_password,omitempty" gorm:"type:varchar(100)"`
	AccessInstructions string `json:"access_instructions,omitempty" gorm:"type:text"`
	ParkingInfo        string `json:"parking_info,omitempty" gorm:"type:text"`
	HouseRules         string `json:"house_rules,omitempty" gorm:"type:text"`
	EmergencyContact   string `json:"emergency_contact,omitempty" gorm:"type:varchar(255)"`

	FAQs []PropertyFAQ `json:"faqs,omitempty" gorm:"foreignKey:PropertyID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PropertyFAQ is a question/answer pair attached to a property
type PropertyFAQ struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;index"`
	Question   string    `json:"question" gorm:"type:text"`
	Answer     string    `json:"answer" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// AnsweredFAQs returns FAQs with non-empty question and answer
func (p *Property) AnsweredFAQs() []PropertyFAQ {
	if p == nil {
		return nil
	}
	out := make([]PropertyFAQ, 0, len(p.FAQs))
	for _, f := range p.FAQs {
		if f.Question != "" && f.Answer != "" {
			out = append(out, f)
		}
	}
	return out
}

// TableName specifies the table name for GORM
func (Property) TableName() string {
	return "properties"
}

// TableName specifies the table name for GORM
func (PropertyFAQ) TableName() string {
	return "property_faqs"
}
