package model

// EntityType identifies which extractor pattern matched an entity.
// The catalog is closed: extraction never produces a type outside this set.
type EntityType string

const (
	EntityEmail          EntityType = "email"
	EntityPhone          EntityType = "phone"
	EntityURL            EntityType = "url"
	EntityDateKorean     EntityType = "date_korean"
	EntityDateNumeric    EntityType = "date_numeric"
	EntityTime           EntityType = "time"
	EntityCurrency       EntityType = "currency"
	EntityPostcode       EntityType = "postcode"
	EntityIDNumber       EntityType = "id_number"
	EntityBusinessNumber EntityType = "business_number"
)

// EntityTypes returns the full catalog in the fixed order extraction
// passes run in.
func EntityTypes() []EntityType {
	return []EntityType{
		EntityEmail,
		EntityPhone,
		EntityURL,
		EntityDateKorean,
		EntityDateNumeric,
		EntityTime,
		EntityCurrency,
		EntityPostcode,
		EntityIDNumber,
		EntityBusinessNumber,
	}
}

// Valid reports whether t is part of the closed catalog.
func (t EntityType) Valid() bool {
	for _, known := range EntityTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ExtractedEntity is a regex-recognized span of text. Position holds
// (start, end) character offsets, counted in runes, into the text the
// entity was extracted from. Confidence is always 1.0 for regex matches:
// a pattern either matches exactly or not at all.
type ExtractedEntity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"entity_type"`
	Confidence float64    `json:"confidence"`
	Position   [2]int     `json:"position"`
	PageNumber int        `json:"page_number"`
}

// Start returns the entity's starting rune offset.
func (e ExtractedEntity) Start() int { return e.Position[0] }

// End returns the entity's ending rune offset (exclusive).
func (e ExtractedEntity) End() int { return e.Position[1] }
