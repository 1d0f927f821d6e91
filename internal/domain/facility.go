package domain

import (
	"strings"
	"time"
)

type Tier string

const (
	TierFounding Tier = "FOUNDING"
	TierGold     Tier = "GOLD"
	TierSilver   Tier = "SILVER"
	TierGuest    Tier = "GUEST"
)

var Tiers = []Tier{TierFounding, TierGold, TierSilver, TierGuest}

func (t Tier) Valid() bool {
	for _, v := range Tiers {
		if v == t {
			return true
		}
	}
	return false
}

type Facility struct {
	ID                    string    `json:"id"`
	Slug                  string    `json:"slug"`
	Label                 string    `json:"label"`
	VenueID               string    `json:"venue_id"`
	ResourceCount         int       `json:"resource_count"`
	BasePrice             int64     `json:"base_price"`
	MinPlayers            int       `json:"min_players"`
	RequiresCertification bool      `json:"requires_certification"`
	AllowedTiers          []Tier    `json:"allowed_tiers"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Allows — пустой список тарифов означает, что ограничений нет.
func (f *Facility) Allows(t Tier) bool {
	if len(f.AllowedTiers) == 0 {
		return true
	}
	for _, at := range f.AllowedTiers {
		if at == t {
			return true
		}
	}
	return false
}

type AddOn struct {
	ID         string    `json:"id"`
	FacilityID string    `json:"facility_id"`
	Label      string    `json:"label"`
	Price      int64     `json:"price"`
	Icon       string    `json:"icon"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateFacilityInput struct {
	Slug                  string
	Label                 string
	VenueID               string
	ResourceCount         int
	BasePrice             int64
	MinPlayers            int
	RequiresCertification bool
	AllowedTiers          []Tier
}

type CreateAddOnInput struct {
	FacilitySlug string
	Label        string
	Price        int64
	Icon         string
}

// SlotAvailability lists the resources still free at a slot start.
type SlotAvailability struct {
	StartTime     string `json:"start_time"`
	FreeResources []int  `json:"free_resources"`
}

// Title renders the tier for people: "GOLD" -> "Gold".
func (t Tier) Title() string {
	if t == "" {
		return ""
	}
	s := strings.ToLower(string(t))
	return strings.ToUpper(s[:1]) + s[1:]
}
