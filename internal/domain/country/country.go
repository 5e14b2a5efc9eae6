package country

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// Country is the aggregate root for a player's nation.
//
// Invariants:
//   - environment stays in [0,100] after every advancement
//   - lastResourceUpdate never moves backwards
//   - at most one OwnedBuilding per type, and every count is >= 1
//   - every construction order is promoted exactly once
type Country struct {
	id                 string
	userID             shared.UserID
	name               string
	government         Government
	values             []Value
	flag               Flag
	resources          Resources
	buildings          []OwnedBuilding
	constructionQueue  []ConstructionOrder
	lastResourceUpdate time.Time
	createdAt          time.Time
}

// NewCountry founds a country with default resources, no buildings and an empty queue
func NewCountry(
	userID shared.UserID,
	name string,
	government Government,
	values []Value,
	flag Flag,
	now time.Time,
) (*Country, error) {
	name = strings.TrimSpace(name)

	if userID.IsZero() {
		return nil, shared.NewValidationError("user_id", "user_id is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("name", "country name is required")
	}
	if !government.IsValid() {
		return nil, shared.NewValidationError("government", fmt.Sprintf("invalid government type: %s", government))
	}
	if len(values) == 0 {
		return nil, shared.NewValidationError("values", "at least one value is required")
	}
	if len(values) > MaxValues {
		return nil, shared.NewValidationError("values", fmt.Sprintf("at most %d values are allowed", MaxValues))
	}
	for _, v := range values {
		if !v.IsValid() {
			return nil, shared.NewValidationError("values", fmt.Sprintf("invalid value: %s", v))
		}
	}
	if err := flag.Validate(); err != nil {
		return nil, shared.NewValidationError("flag", err.Error())
	}

	vals := make([]Value, len(values))
	copy(vals, values)

	return &Country{
		id:                 uuid.NewString(),
		userID:             userID,
		name:               name,
		government:         government,
		values:             vals,
		flag:               flag,
		resources:          DefaultResources(),
		buildings:          []OwnedBuilding{},
		constructionQueue:  []ConstructionOrder{},
		lastResourceUpdate: now,
		createdAt:          now,
	}, nil
}

// ReconstructCountry rebuilds a country from persistence without founding validation
func ReconstructCountry(
	id string,
	userID shared.UserID,
	name string,
	government Government,
	values []Value,
	flag Flag,
	resources Resources,
	buildings []OwnedBuilding,
	constructionQueue []ConstructionOrder,
	lastResourceUpdate time.Time,
	createdAt time.Time,
) *Country {
	if buildings == nil {
		buildings = []OwnedBuilding{}
	}
	if constructionQueue == nil {
		constructionQueue = []ConstructionOrder{}
	}
	return &Country{
		id:                 id,
		userID:             userID,
		name:               name,
		government:         government,
		values:             values,
		flag:               flag,
		resources:          resources,
		buildings:          buildings,
		constructionQueue:  constructionQueue,
		lastResourceUpdate: lastResourceUpdate,
		createdAt:          createdAt,
	}
}

// Getters

func (c *Country) ID() string                    { return c.id }
func (c *Country) UserID() shared.UserID         { return c.userID }
func (c *Country) Name() string                  { return c.name }
func (c *Country) Government() Government        { return c.government }
func (c *Country) Flag() Flag                    { return c.flag }
func (c *Country) Resources() Resources          { return c.resources }
func (c *Country) LastResourceUpdate() time.Time { return c.lastResourceUpdate }
func (c *Country) CreatedAt() time.Time          { return c.createdAt }

// Values returns a copy of the value tags
func (c *Country) Values() []Value {
	out := make([]Value, len(c.values))
	copy(out, c.values)
	return out
}

// Buildings returns a copy of the owned buildings
func (c *Country) Buildings() []OwnedBuilding {
	out := make([]OwnedBuilding, len(c.buildings))
	copy(out, c.buildings)
	return out
}

// ConstructionQueue returns a copy of the queue in insertion order
func (c *Country) ConstructionQueue() []ConstructionOrder {
	out := make([]ConstructionOrder, len(c.constructionQueue))
	copy(out, c.constructionQueue)
	return out
}

// BuildingCount returns how many completed instances of a type the country owns
func (c *Country) BuildingCount(t building.Type) int {
	for _, owned := range c.buildings {
		if owned.Type == t {
			return owned.Count
		}
	}
	return 0
}

// UpdateFlag replaces the flag; it is the only founding attribute that may change
func (c *Country) UpdateFlag(flag Flag) error {
	if err := flag.Validate(); err != nil {
		return shared.NewValidationError("flag", err.Error())
	}
	c.flag = flag
	return nil
}

// IsOwnedBy reports whether the country belongs to the user
func (c *Country) IsOwnedBy(userID shared.UserID) bool {
	return c.userID.Equals(userID)
}

// addBuilding increments an existing entry or appends a new one with count 1
func (c *Country) addBuilding(t building.Type) {
	for i := range c.buildings {
		if c.buildings[i].Type == t {
			c.buildings[i].Count++
			return
		}
	}
	c.buildings = append(c.buildings, OwnedBuilding{Type: t, Count: 1})
}

// enqueue deducts the cost and appends the order
func (c *Country) enqueue(order ConstructionOrder, cost int) {
	c.resources.Economy -= cost
	c.constructionQueue = append(c.constructionQueue, order)
}
