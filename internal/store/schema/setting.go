package schema

// Setting represents the settings table - named global configuration values
// such as the default gas price.
type Setting struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique setting name, e.g. "gas-price"
	Name string `json:"name" gorm:"column:name;not null;unique;type:text"`
	// Type describes how Value should be parsed ("integer", "string", ...)
	Type string `json:"type" gorm:"column:type;not null;type:text"`
	// Value is the raw setting value
	Value string `json:"value" gorm:"column:value;not null;type:text"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
