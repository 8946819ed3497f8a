package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON is a wrapper around gorm.io/datatypes.JSON to allow for custom data
// type mapping. Backs the open attribute mapping on Asset and the details
// mapping on Journal.
type JSON struct {
	datatypes.JSON
}

// JSONObject builds a JSON column value from a string-keyed mapping.
func JSONObject(m map[string]interface{}) JSON {
	if m == nil {
		return EmptyJSONObject()
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return EmptyJSONObject()
	}
	return JSON{JSON: datatypes.JSON(raw)}
}

// EmptyJSONObject returns the default value for JSON mapping columns.
func EmptyJSONObject() JSON {
	return JSON{JSON: datatypes.JSON([]byte("{}"))}
}

// Map decodes the column back into a string-keyed mapping. Unset or
// undecodable values come back as an empty mapping.
func (j JSON) Map() map[string]interface{} {
	out := make(map[string]interface{})
	if len(j.JSON) == 0 {
		return out
	}
	if err := json.Unmarshal(j.JSON, &out); err != nil {
		return make(map[string]interface{})
	}
	return out
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
