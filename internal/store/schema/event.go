package schema

// Event represents the events table - one attendance event per row
type Event struct {
	// ID is an auto-incrementing sequence number; also the on-chain event id
	ID uint64 `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// FancyID is the human-readable unique slug of the event
	FancyID     string `json:"fancyId" gorm:"column:fancy_id;not null;unique;type:text"`
	Name        string `json:"name" gorm:"column:name;not null;type:text"`
	Description string `json:"description" gorm:"column:description;type:text"`
	City        string `json:"city" gorm:"column:city;type:text"`
	Country     string `json:"country" gorm:"column:country;type:text"`
	StartDate   string `json:"startDate" gorm:"column:start_date;type:text"`
	EndDate     string `json:"endDate" gorm:"column:end_date;type:text"`
	Year        int    `json:"year" gorm:"column:year"`
	EventURL    string `json:"eventUrl" gorm:"column:event_url;type:text"`
	ImageURL    string `json:"imageUrl" gorm:"column:image_url;type:text"`
	// Signer is the authority address whose proof signatures validate direct
	// claims for this event
	Signer *string `json:"signer,omitempty" gorm:"column:signer;type:varchar(42)"`
	// SignerIP is the network location of the authority's signing kiosk
	SignerIP *string `json:"signerIp,omitempty" gorm:"column:signer_ip;type:text"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}
